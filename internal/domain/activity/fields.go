package activity

// Field names used to attribute failures, in evaluation order.
const (
	FieldName                       = "name"
	FieldAddress                    = "address"
	FieldLocation                   = "location"
	FieldEstimatedStartDate         = "estimated_start_date"
	FieldEstimatedEndDate           = "estimated_end_date"
	FieldDeliveringDate             = "delivering_date"
	FieldDescription                = "description"
	FieldImages                     = "images"
	FieldActivityTypeIDs            = "activity_type_ids"
	FieldBranchIDs                  = "branch_ids"
	FieldTargetProcessRequests      = "target_process_requests"
	FieldAidItemForActivityRequests = "aid_item_for_activity_requests"
)

// Business limits. Every bound is inclusive.
const (
	NameMinLength        = 5
	NameMaxLength        = 100
	AddressMinLength     = 10
	AddressMaxLength     = 250
	DescriptionMinLength = 50
	LocationArity        = 2
	MaxImages            = 5

	// StartWindowMonths bounds how far ahead a campaign may be scheduled.
	StartWindowMonths = 3

	// MaxDurationMonths bounds the distance from start to end.
	MaxDurationMonths = 3
)
