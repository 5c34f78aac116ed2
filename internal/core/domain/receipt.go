package domain

import "time"

// Receipt records goods arriving at the warehouse. Its items increase balances
// for as long as the receipt exists.
type Receipt struct {
	ReceiptID string     `json:"receiptId"`
	Number    string     `json:"number"`
	Date      time.Time  `json:"date"`
	Items     []LineItem `json:"items"`
	AuditFields
}

// Clone returns a deep copy of r.
func (r Receipt) Clone() Receipt {
	r.Items = cloneItems(r.Items)
	return r
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
