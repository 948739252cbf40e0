package payroll

// Client facing messages
const (
	MsgWrongDateFormat  = "Wrong Date: Use mm-yyyy format!"
	MsgNoSuchEmployee   = "No such employee registered!"
	MsgNoSuchRecord     = "No such record found for this employee and period!"
	MsgRecordExists     = "A record already exists for this employee and period! Use PUT!"
	MsgDuplicateRecords = "Duplicate record for same employee and period provided!"
	MsgAdded            = "Added successfully!"
	MsgUpdated          = "Updated successfully!"
	MsgRecordPrefix     = "Record %d: %s"

	MsgInvalidEmployee = "Not a valid corporate Email"
	MsgWrongDate       = "Wrong date!"
	MsgNegativeSalary  = "Salary must be non negative!"
)
