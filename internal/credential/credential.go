// Package credential defines the values randcred generates and records.
package credential

// Kind selects which sampler a Request is served by.
type Kind int

const (
	Username Kind = iota
	Password
)

// Request describes a single string to generate.
// Punctuation only applies to Password requests.
type Request struct {
	Kind        Kind
	Length      int
	Punctuation bool
}

// Credential is one generated username/password pair.
type Credential struct {
	Username string
	Password string
}

// Record is a credential as it is written out, with an optional label.
type Record struct {
	Label    string
	Username string
	Password string
}

// Record returns c as an output record carrying label.
func (c Credential) Record(label string) Record {
	return Record{
		Label:    label,
		Username: c.Username,
		Password: c.Password,
	}
}
