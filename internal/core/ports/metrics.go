package ports

// DispatchMetrics records business level counters of the dispatch engine.
type DispatchMetrics interface {
	LoadCreated()
	LoadStatusChanged(from, to string)
	LoadAssigned(reassignment bool)

	// AssignmentRejected counts assign calls refused by eligibility or state,
	// labelled with a short reason such as "validation" or "business_rule".
	AssignmentRejected(reason string)

	InvoiceIssued()
	PaymentRecorded()
}
