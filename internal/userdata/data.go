package userdata

// The lists below are indexed by seeded draws. Their order and length,
// duplicates included, are part of the generated output.

var organizations = []string{
	"Lendsqr", "Irorun", "Lendstar", "Paystack", "Flutterwave", "Interswitch",
	"Kuda", "Carbon", "Fairmoney", "Branch", "Renmoney", "Aella", "Palmcredit",
	"Quickfund", "Migo", "Kiakia", "Payhippo", "C24", "Lidya", "Credpal",
}

var firstNames = []string{
	"Adedeji", "Grace", "Tosin", "Debby", "Chinedu", "Fatima", "Emmanuel", "Blessing",
	"Oluwaseun", "Aisha", "Ibrahim", "Chioma", "Kemi", "Tunde", "Funmi", "Segun",
	"Ngozi", "Yusuf", "Bimbo", "Femi", "Kemi", "Tolu", "Wale", "Bisi", "Kunle",
	"Folake", "Gbenga", "Tope", "Lola", "Seun", "Bukola", "Dayo", "Temi", "Yemi",
	"Sade", "Bola", "Kemi", "Tayo", "Wumi", "Bimpe", "Tunde", "Funke", "Seun",
	"Bukky", "Tope", "Lola", "Gbemi", "Tolu", "Kemi", "Wale", "Bisi", "Kunle",
	"Folake", "Gbenga", "Tope", "Lola", "Seun", "Bukola", "Dayo", "Temi",
}

var lastNames = []string{
	"Effiom", "Ogana", "Dokunmu", "Adebayo", "Okafor", "Ibrahim", "Okonkwo", "Adebisi",
	"Ogunleye", "Adeyemi", "Oluwaseun", "Chukwu", "Adeleke", "Okafor", "Ibrahim", "Okonkwo",
	"Adebisi", "Ogunleye", "Adeyemi", "Oluwaseun", "Chukwu", "Adeleke", "Okafor", "Ibrahim",
	"Okonkwo", "Adebisi", "Ogunleye", "Adeyemi", "Oluwaseun", "Chukwu", "Adeleke", "Okafor",
	"Ibrahim", "Okonkwo", "Adebisi", "Ogunleye", "Adeyemi", "Oluwaseun", "Chukwu", "Adeleke",
	"Okafor", "Ibrahim", "Okonkwo", "Adebisi", "Ogunleye", "Adeyemi", "Oluwaseun", "Chukwu",
}

var banks = []string{
	"Providus Bank", "Access Bank", "GTBank", "First Bank", "Zenith Bank", "UBA",
	"Stanbic IBTC", "Fidelity Bank", "Union Bank", "Wema Bank", "Polaris Bank",
	"Sterling Bank", "FCMB", "Heritage Bank", "Jaiz Bank", "Keystone Bank",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "lendsqr.com",
	"irorun.com", "lendstar.com", "paystack.com", "flutterwave.com",
}

// socialHandles are fallback handles used when a user's own name is not
// taken as their handle.
var socialHandles = []string{
	"grace_effiom", "tosin_dokunmu", "debby_ogana", "chinedu_adebayo",
	"fatima_ibrahim", "emmanuel_okonkwo", "blessing_adebisi", "oluwaseun_adeyemi",
	"aisha_chukwu", "ibrahim_adeleke", "chioma_okafor", "kemi_ogunleye",
	"tunde_adeyemi", "funmi_oluwaseun", "segun_chukwu", "ngozi_adeleke",
}

var phonePrefixes = []string{"080", "081", "070", "090", "091"}

var tiers = []Tier{Tier1, Tier2, Tier3}

// genders excludes GenderOther: it exists on the type but is never drawn.
var genders = []Gender{GenderMale, GenderFemale}

var maritalStatuses = []MaritalStatus{
	MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed,
}

var educationLevels = []EducationLevel{
	EducationBSc, EducationMSc, EducationHND, EducationOND,
	EducationSSCE, EducationPrimary, EducationPhD,
}

var employmentStatuses = []EmploymentStatus{
	EmploymentEmployed, EmploymentUnemployed, EmploymentSelfEmployed,
	EmploymentStudent, EmploymentRetired,
}

var sectors = []Sector{
	SectorFinTech, SectorBanking, SectorTechnology, SectorHealthcare, SectorEducation,
	SectorGovernment, SectorManufacturing, SectorAgriculture, SectorRealEstate,
	SectorEntertainment,
}

var relationships = []Relationship{
	RelationshipSister, RelationshipBrother, RelationshipParent, RelationshipSpouse,
	RelationshipFriend, RelationshipColleague, RelationshipCousin, RelationshipUncle,
	RelationshipAunt,
}

var residences = []Residence{
	ResidenceParentsApartment, ResidenceOwnApartment, ResidenceRentedApartment,
	ResidenceFamilyHouse, ResidenceHostel, ResidenceOffice,
}
