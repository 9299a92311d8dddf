// Package data holds the built-in job request sheet shown when gridsheet
// is started without a data source.
package data

import "github.com/imgajeed76/gridsheet/internal/grid"

// Title is the sheet name of the built-in data set.
const Title = "Job Requests"

// JobColumns is the column schema of the job request sheet.
var JobColumns = []grid.Column{
	{Key: "id", Label: "#", MinWidth: 3, Kind: grid.KindOrdinal},
	{Key: "request", Label: "Job Request", MinWidth: 25, Kind: grid.KindText},
	{Key: "submitted", Label: "Submitted", MinWidth: 10, Kind: grid.KindText},
	{Key: "submitter", Label: "Submitter", MinWidth: 14, Kind: grid.KindText},
	{Key: "status", Label: "Status", MinWidth: 13, Kind: grid.KindStatus},
	{Key: "assignedTo", Label: "Assigned To", MinWidth: 14, Kind: grid.KindText},
	{Key: "url", Label: "URL", MinWidth: 18, Kind: grid.KindURL},
	{Key: "priority", Label: "Priority", MinWidth: 8, Kind: grid.KindPriority},
	{Key: "dueDate", Label: "Due Date", MinWidth: 10, Kind: grid.KindText},
	{Key: "estValue", Label: "Est. Value", MinWidth: 12, Kind: grid.KindCurrency},
}

type job struct {
	id         int
	request    string
	submitted  string
	submitter  string
	status     string
	assignedTo string
	url        string
	priority   string
	dueDate    string
	estValue   int64
}

var jobs = []job{
	{1, "Launch social media campaign for product XYZ", "15-11-2024", "Aisha Patel", "In-process", "Sophie Choudhury", "www.aishapatel.com", "Medium", "20-11-2024", 6200000},
	{2, "Update press kit for company redesign", "28-10-2024", "Irfan Khan", "Need to start", "Tejas Pandey", "www.irfankhanportfolio.com", "High", "30-10-2024", 3500000},
	{3, "Finalize user testing feedback for app update", "05-12-2024", "Mark Johnson", "In-process", "Rachel Lee", "www.markjohnsondesigns.com", "Medium", "10-12-2024", 4750000},
	{4, "Design new features for the website", "10-01-2025", "Emily Green", "Complete", "Tom Wright", "www.emilygreenart.com", "Low", "15-01-2025", 5900000},
	{5, "Prepare financial report for Q4", "25-01-2025", "Jessica Brown", "Blocked", "Kevin Smith", "www.jessicabrowncreative.com", "Low", "30-01-2025", 2800000},
	{6, "Migrate billing service to new provider", "03-02-2025", "Daniel Ortiz", "Need to start", "Priya Nair", "www.danielortiz.dev", "High", "28-02-2025", 8100000},
	{7, "Refresh onboarding email sequence", "11-02-2025", "Hana Sato", "In-process", "Liam O'Connor", "www.hanasato.studio", "Medium", "21-02-2025", 1250000},
	{8, "Audit accessibility of checkout flow", "19-02-2025", "Omar Haddad", "Complete", "Sophie Choudhury", "www.omarhaddad.io", "High", "05-03-2025", 960000},
}

// JobRecords returns the job requests as grid records. Each call returns
// fresh records.
func JobRecords() []grid.Record {
	records := make([]grid.Record, len(jobs))
	for i, j := range jobs {
		records[i] = grid.Record{
			"id":         j.id,
			"request":    j.request,
			"submitted":  j.submitted,
			"submitter":  j.submitter,
			"status":     j.status,
			"assignedTo": j.assignedTo,
			"url":        j.url,
			"priority":   j.priority,
			"dueDate":    j.dueDate,
			"estValue":   j.estValue,
		}
	}
	return records
}

// Columns returns a copy of the job request column schema.
func Columns() []grid.Column {
	return append([]grid.Column(nil), JobColumns...)
}
