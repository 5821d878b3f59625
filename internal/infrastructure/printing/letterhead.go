package printing

// Company letterhead and bank details printed on every generated document.
const (
	CompanyName    = "SHRIRAM LOGISTICS"
	CompanyAddress = "No. 66/1, Mettu Street, Kaladipet, Chennai - 600 019"
	CompanyContact = "Contact: 044 - 4213 3684  |  E-Mail: shriramlogics@gmail.com"
	CompanyState   = "State: Tamil Nadu"
	CompanyGSTIN   = "33AJBPM6638G1ZA"
	CompanyPAN     = "AJBPM6638G"

	BankName    = "CANARA BANK"
	BankAccount = "60151400000726"
	BankBranch  = "Mylapore Branch"
	BankIFSC    = "CNRB0016015"

	JurisdictionNotice = "Subject to Chennai Jurisdiction"
)

// Letterhead bundles the company identity for template rendering.
type Letterhead struct {
	Name    string
	Address string
	Contact string
	State   string
	GSTIN   string
	PAN     string
}

// BankDetails bundles the remittance account for template rendering.
type BankDetails struct {
	Name    string
	Account string
	Branch  string
	IFSC    string
}

// CompanyLetterhead returns the fixed letterhead block.
func CompanyLetterhead() Letterhead {
	return Letterhead{
		Name:    CompanyName,
		Address: CompanyAddress,
		Contact: CompanyContact,
		State:   CompanyState,
		GSTIN:   CompanyGSTIN,
		PAN:     CompanyPAN,
	}
}

// CompanyBankDetails returns the fixed remittance account block.
func CompanyBankDetails() BankDetails {
	return BankDetails{
		Name:    BankName,
		Account: BankAccount,
		Branch:  BankBranch,
		IFSC:    BankIFSC,
	}
}
