package models

import "strings"

// TaskTemplate pre-fills a new task for a recurring kind of engagement
type TaskTemplate struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EngagementType EngagementType `json:"engagement_type"`
	Subtasks       []string       `json:"subtasks"`
}

// BuiltinTemplates returns the templates shipped with the board
func BuiltinTemplates() []TaskTemplate {
	return []TaskTemplate{
		{
			ID:             "onboarding",
			Name:           "New Client Onboarding",
			Title:          "Onboard New Client: [Client Name]",
			Description:    "Run the onboarding workflow for a new client: KYC checks, engagement letter and setting up their file.",
			EngagementType: EngagementAdvisory,
			Subtasks: []string{
				"Perform KYC & AML checks",
				"Send engagement letter for signature",
				"Set up client file in practice management software",
				"Schedule initial kick-off call",
			},
		},
		{
			ID:             "payroll",
			Name:           "Monthly Payroll Process",
			Title:          "Process Monthly Payroll for [Client Name]",
			Description:    "Run the monthly payroll including commissions and overtime.",
			EngagementType: EngagementBookkeeping,
			Subtasks: []string{
				"Receive payroll data from client",
				"Calculate gross wages, commissions, and overtime",
				"Process deductions (tax, NI, pension)",
				"Generate payslips for distribution",
				"Submit RTI report to HMRC",
				"Prepare payment file for bank transfer",
				"Senior review of payroll register",
			},
		},
		{
			ID:             "vat",
			Name:           "Quarterly VAT Return",
			Title:          "Prepare Q[X] VAT Return for [Client Name]",
			Description:    "Prepare and submit the quarterly VAT return after reconciling sales and purchase ledgers.",
			EngagementType: EngagementTax,
			Subtasks: []string{
				"Gather all sales invoices for the quarter",
				"Collect all purchase receipts for the quarter",
				"Reconcile bank statements with accounting records",
				"Perform VAT calculation",
				"Client review and approval",
				"Submit VAT return via MTD software",
			},
		},
	}
}

// FindTemplate looks a template up by id or case-insensitive name
func FindTemplate(ref string) (TaskTemplate, bool) {
	for _, tmpl := range BuiltinTemplates() {
		if tmpl.ID == ref || strings.EqualFold(tmpl.Name, ref) {
			return tmpl, true
		}
	}
	return TaskTemplate{}, false
}
