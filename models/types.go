// ABOUTME: Normalized data models for Breeze people profiles
// ABOUTME: Defines Person, name/phone/email/address parts, and family roles
package models

// FamilyRole is a person's role within their Breeze family unit.
type FamilyRole string

const (
	RoleUnassigned      FamilyRole = "Unassigned"
	RoleChild           FamilyRole = "Child"
	RoleAdult           FamilyRole = "Adult"
	RoleHeadOfHousehold FamilyRole = "Head of Household"
	RoleSpouse          FamilyRole = "Spouse"
)

// ID returns the numeric identifier Breeze assigns to the role. The second
// return value is false for roles Breeze does not recognize.
func (r FamilyRole) ID() (string, bool) {
	switch r {
	case RoleUnassigned:
		return "1", true
	case RoleChild:
		return "2", true
	case RoleAdult:
		return "3", true
	case RoleHeadOfHousehold:
		return "4", true
	case RoleSpouse:
		return "5", true
	}
	return "", false
}

// Person is the flattened, normalized profile returned by the formatted
// people operations. Nullable scalars are pointers so that "not configured"
// and "empty" survive JSON round-trips as null.
type Person struct {
	ID            string             `json:"id"`
	Img           *string            `json:"img"`
	Name          Name               `json:"name"`
	Phones        []Phone            `json:"phones"`
	Email         *Email             `json:"email"`
	Address       *Address           `json:"address"`
	Birthday      *string            `json:"birthday"`
	Anniversary   *string            `json:"anniversary"`
	Gender        *string            `json:"gender"`
	Status        *string            `json:"status"`
	Campus        *string            `json:"campus"`
	MaritalStatus *string            `json:"maritalStatus"`
	JoinDate      *string            `json:"joinDate"`
	School        *string            `json:"school"`
	Grade         *string            `json:"grade"`
	Employer      *string            `json:"employer"`
	FamilyRole    FamilyRole         `json:"familyRole"`
	Family        []FamilyMember     `json:"family"`
	Fields        map[string]*string `json:"fields"`
}

// Name holds a person's name parts. First carries the preferred name when
// the person has one, the legal first name otherwise; the legal name is not
// retained separately.
type Name struct {
	First  string  `json:"first"`
	Last   string  `json:"last"`
	Nick   *string `json:"nick"`
	Middle *string `json:"middle"`
	Maiden *string `json:"maiden"`
}

// Phone is one phone entry on a profile.
type Phone struct {
	Type        string `json:"type"` // home, mobile, or work
	Number      string `json:"number"`
	Private     bool   `json:"private"`
	DisableText bool   `json:"disableText"`
}

// Email is the primary email on a profile.
type Email struct {
	Address string `json:"address"`
	Private bool   `json:"private"`
	Bulk    bool   `json:"bulk"`
}

// Address is the primary mailing address on a profile.
type Address struct {
	Street1 *string `json:"street1"`
	Street2 *string `json:"street2"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Lat     *string `json:"lat"`
	Lng     *string `json:"lng"`
	Private bool    `json:"private"`
}

// FamilyMember is one entry in a person's family association list, as
// reported by Breeze.
type FamilyMember struct {
	ID        string     `json:"id"`
	OID       string     `json:"oid"`
	PersonID  string     `json:"person_id"`
	FamilyID  string     `json:"family_id"`
	RoleID    string     `json:"role_id"`
	RoleName  FamilyRole `json:"role_name"`
	Order     string     `json:"order,omitempty"`
	CreatedOn string     `json:"created_on,omitempty"`
}
