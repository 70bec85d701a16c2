// Package userdata synthesizes the borrower records shown in the admin
// console. Generation is driven by a seeded linear congruential generator so
// a seed always yields the same records in the same order.
package userdata

import "time"

// Status is the account state of a user.
type Status string

const (
	StatusActive      Status = "Active"
	StatusInactive    Status = "Inactive"
	StatusPending     Status = "Pending"
	StatusBlacklisted Status = "Blacklisted"
)

// Statuses lists every status in draw order.
var Statuses = []Status{StatusActive, StatusInactive, StatusPending, StatusBlacklisted}

// ParseStatus returns the status with the exact given name.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Tier is the user's rating, one to three stars.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

type EducationLevel string

const (
	EducationBSc     EducationLevel = "B.Sc"
	EducationMSc     EducationLevel = "M.Sc"
	EducationHND     EducationLevel = "HND"
	EducationOND     EducationLevel = "OND"
	EducationSSCE    EducationLevel = "SSCE"
	EducationPrimary EducationLevel = "Primary"
	EducationPhD     EducationLevel = "PhD"
)

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "Employed"
	EmploymentUnemployed   EmploymentStatus = "Unemployed"
	EmploymentSelfEmployed EmploymentStatus = "Self-employed"
	EmploymentStudent      EmploymentStatus = "Student"
	EmploymentRetired      EmploymentStatus = "Retired"
)

type Sector string

const (
	SectorFinTech       Sector = "FinTech"
	SectorBanking       Sector = "Banking"
	SectorTechnology    Sector = "Technology"
	SectorHealthcare    Sector = "Healthcare"
	SectorEducation     Sector = "Education"
	SectorGovernment    Sector = "Government"
	SectorManufacturing Sector = "Manufacturing"
	SectorAgriculture   Sector = "Agriculture"
	SectorRealEstate    Sector = "Real Estate"
	SectorEntertainment Sector = "Entertainment"
)

type Relationship string

const (
	RelationshipSister    Relationship = "Sister"
	RelationshipBrother   Relationship = "Brother"
	RelationshipParent    Relationship = "Parent"
	RelationshipSpouse    Relationship = "Spouse"
	RelationshipFriend    Relationship = "Friend"
	RelationshipColleague Relationship = "Colleague"
	RelationshipCousin    Relationship = "Cousin"
	RelationshipUncle     Relationship = "Uncle"
	RelationshipAunt      Relationship = "Aunt"
)

type Residence string

const (
	ResidenceParentsApartment Residence = "Parent's Apartment"
	ResidenceOwnApartment     Residence = "Own Apartment"
	ResidenceRentedApartment  Residence = "Rented Apartment"
	ResidenceFamilyHouse      Residence = "Family House"
	ResidenceHostel           Residence = "Hostel"
	ResidenceOffice           Residence = "Office"
)

// PersonalInfo is the "Personal Information" block of a user.
type PersonalInfo struct {
	FullName      string        `json:"full_name"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	BVN           string        `json:"bvn"`
	Gender        Gender        `json:"gender"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	Children      int           `json:"children"`
	Residence     Residence     `json:"residence"`
}

// IncomeRange is a monthly income band in naira.
type IncomeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Employment is the "Education and Employment" block of a user.
type Employment struct {
	Education     EducationLevel   `json:"education"`
	Status        EmploymentStatus `json:"status"`
	Sector        Sector           `json:"sector"`
	Duration      string           `json:"duration"`
	OfficeEmail   string           `json:"office_email"`
	MonthlyIncome IncomeRange      `json:"monthly_income"`
	LoanRepayment int              `json:"loan_repayment"`
}

// Socials holds per-platform handles. A nil handle means the user has no
// account on that platform.
type Socials struct {
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// Guarantor is a second synthetic identity vouching for the user.
type Guarantor struct {
	FullName     string       `json:"full_name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Relationship Relationship `json:"relationship"`
}

// User is one synthesized borrower.
type User struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	// DateJoined is CreatedAt rendered with DateLayout; the date filter
	// matches against it.
	DateJoined string `json:"date_joined"`
	Status     Status `json:"status"`

	Tier           Tier   `json:"tier"`
	AccountBalance int    `json:"account_balance"`
	BankAccount    string `json:"bank_account"`
	BankName       string `json:"bank_name"`

	Personal   PersonalInfo `json:"personal"`
	Employment Employment   `json:"employment"`
	Socials    Socials      `json:"socials"`
	Guarantor  Guarantor    `json:"guarantor"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	EmailVerified bool `json:"email_verified"`
	PhoneVerified bool `json:"phone_verified"`
	BVNVerified   bool `json:"bvn_verified"`
}
