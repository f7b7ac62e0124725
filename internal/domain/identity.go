package domain

// Identity is the opaque caller reference issued by the external identity
// provider. The core never inspects it beyond equality checks.
type Identity string

// None is the absent identity.
const None Identity = ""

// IsNone returns true if no identity is present.
func (i Identity) IsNone() bool {
	return i == None
}
