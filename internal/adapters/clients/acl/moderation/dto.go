// Package moderation translates between activity proposals and the
// downstream moderation API's wire format.
package moderation

// SubmitActivityRequestDTO matches the moderation API's
// SubmitActivityRequest schema. Dates are ISO 8601 calendar dates.
type SubmitActivityRequestDTO struct {
	Name               string             `json:"name"`
	Address            *string            `json:"address,omitempty"`
	Location           *LocationDTO       `json:"location,omitempty"`
	EstimatedStartDate string             `json:"estimated_start_date"`
	EstimatedEndDate   string             `json:"estimated_end_date"`
	DeliveringDate     *string            `json:"delivering_date,omitempty"`
	Description        string             `json:"description"`
	Images             []ImageDTO         `json:"images"`
	ActivityTypeIDs    []string           `json:"activity_type_ids"`
	BranchIDs          []string           `json:"branch_ids,omitempty"`
	TargetProcesses    []TargetProcessDTO `json:"target_processes,omitempty"`
	AidItems           []AidItemDTO       `json:"aid_items,omitempty"`
}

// LocationDTO is a coordinate pair.
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ImageDTO references uploaded image metadata.
type ImageDTO struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
}

// TargetProcessDTO is a requested quantity of a catalog item.
type TargetProcessDTO struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// AidItemDTO is a pledged quantity of an organization aid item.
type AidItemDTO struct {
	AidItemID string `json:"aid_item_id"`
	Quantity  int    `json:"quantity"`
}

// SubmissionDTO matches the moderation API's Submission schema.
type SubmissionDTO struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}
