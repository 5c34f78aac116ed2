package models

// Reference is a row of the resources, units or clients table.
// Address is only stored for clients.
type Reference struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	State   string `db:"state"`
	AuditFields
}
