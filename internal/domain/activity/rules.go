package activity

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
)

// input is everything one evaluation may read: the request plus the
// per-call snapshot of the clock and the upload policy.
type input struct {
	req    *Request
	today  calendar.Date
	limits UploadLimits
}

type (
	textRule  = validation.Rule[input, *string]
	dateRule  = validation.Rule[input, *calendar.Date]
	imageRule = validation.Rule[input, []*FileRef]
	idsRule   = validation.Rule[input, []uuid.UUID]
)

// rules is the activity rule table. Chains run in declaration order, which
// is also the reporting order.
var rules = validation.MustEngine(
	validation.Field(FieldName, func(in input) *string { return in.req.Name },
		validation.StopOnFirstFailure,
		required[*string](func(v *string) bool { return v != nil }),
		lengthBetween(NameMinLength, NameMaxLength),
	),
	validation.Field(FieldAddress, func(in input) *string { return in.req.Address },
		validation.StopOnFirstFailure,
		lengthBetween(AddressMinLength, AddressMaxLength),
	),
	validation.Field(FieldLocation, func(in input) []float64 { return in.req.Location },
		validation.StopOnFirstFailure,
		validation.Must(validation.CodeArityMismatch, validation.Params{"count": LocationArity},
			func(v []float64, _ input) bool { return v == nil || len(v) == LocationArity }),
	),
	validation.Field(FieldEstimatedStartDate, func(in input) *calendar.Date { return in.req.EstimatedStartDate },
		validation.StopOnFirstFailure,
		required[*calendar.Date](func(v *calendar.Date) bool { return v != nil }),
		notBefore(validation.CodeDateBeforeWindow, startWindow),
		notAfter(validation.CodeDateAfterWindow, startWindow),
	),
	validation.Field(FieldEstimatedEndDate, func(in input) *calendar.Date { return in.req.EstimatedEndDate },
		validation.StopOnFirstFailure,
		required[*calendar.Date](func(v *calendar.Date) bool { return v != nil }),
		notBefore(validation.CodeDateOrderingViolation, durationWindow),
		notAfter(validation.CodeDateAfterWindow, durationWindow),
	),
	validation.Field(FieldDeliveringDate, func(in input) *calendar.Date { return in.req.DeliveringDate },
		validation.StopOnFirstFailure,
		notBefore(validation.CodeDateBeforeWindow, campaignWindow),
		notAfter(validation.CodeDateAfterWindow, campaignWindow),
	),
	validation.Field(FieldDescription, func(in input) *string { return in.req.Description },
		validation.StopOnFirstFailure,
		required[*string](func(v *string) bool { return v != nil }),
		validation.Must(validation.CodeLengthOutOfRange, validation.Params{"min": DescriptionMinLength},
			func(v *string, _ input) bool { return v == nil || utf8.RuneCountInString(*v) >= DescriptionMinLength }),
	),
	validation.Field(FieldImages, func(in input) []*FileRef { return in.req.Images },
		validation.CollectAll,
		imageRules()...,
	),
	validation.Field(FieldActivityTypeIDs, func(in input) []uuid.UUID { return in.req.ActivityTypeIDs },
		validation.CollectAll,
		required[[]uuid.UUID](func(v []uuid.UUID) bool { return v != nil }),
		validation.Must(validation.CodeCollectionEmpty, nil,
			func(v []uuid.UUID, _ input) bool { return v == nil || len(v) > 0 }),
		uniqueIDs(),
	),
	validation.Field(FieldBranchIDs, func(in input) []uuid.UUID { return in.req.BranchIDs },
		validation.CollectAll,
		uniqueIDs(),
	),
	validation.Field(FieldTargetProcessRequests, func(in input) []TargetProcess { return in.req.TargetProcessRequests },
		validation.CollectAll,
		uniqueBy(func(t TargetProcess) uuid.UUID { return t.ItemID }),
		positiveQuantities(func(t TargetProcess) int { return t.Quantity }),
	),
	validation.Field(FieldAidItemForActivityRequests, func(in input) []AidItem { return in.req.AidItemForActivityRequests },
		validation.CollectAll,
		uniqueBy(func(a AidItem) uuid.UUID { return a.AidItemID }),
		positiveQuantities(func(a AidItem) int { return a.Quantity }),
	),
)

func required[V any](present func(V) bool) validation.Rule[input, V] {
	return validation.Must(validation.CodeRequired, nil, func(v V, _ input) bool { return present(v) })
}

// lengthBetween passes absent values; presence is a separate rule.
func lengthBetween(lo, hi int) textRule {
	return validation.Must(validation.CodeLengthOutOfRange, validation.Params{"min": lo, "max": hi},
		func(v *string, _ input) bool {
			if v == nil {
				return true
			}
			n := utf8.RuneCountInString(*v)
			return n >= lo && n <= hi
		})
}

// window returns the inclusive [from, to] range a date must fall in. Both
// bounds are nil when a field they depend on is absent, and the date is then
// not checked.
type window func(in input) (from, to *calendar.Date)

func startWindow(in input) (from, to *calendar.Date) {
	last := in.today.AddMonths(StartWindowMonths)
	return &in.today, &last
}

func durationWindow(in input) (from, to *calendar.Date) {
	start := in.req.EstimatedStartDate
	if start == nil {
		return nil, nil
	}
	last := start.AddMonths(MaxDurationMonths)
	return start, &last
}

// campaignWindow needs both ends of the campaign.
func campaignWindow(in input) (from, to *calendar.Date) {
	if in.req.EstimatedStartDate == nil || in.req.EstimatedEndDate == nil {
		return nil, nil
	}
	return in.req.EstimatedStartDate, in.req.EstimatedEndDate
}

func notBefore(code validation.Code, w window) dateRule {
	return validation.Check(code, nil, func(v *calendar.Date, in input) (bool, validation.Params) {
		from, to := w(in)
		if v == nil || from == nil || !v.Before(*from) {
			return true, nil
		}
		return false, windowParams(from, to)
	})
}

func notAfter(code validation.Code, w window) dateRule {
	return validation.Check(code, nil, func(v *calendar.Date, in input) (bool, validation.Params) {
		from, to := w(in)
		if v == nil || to == nil || !v.After(*to) {
			return true, nil
		}
		return false, windowParams(from, to)
	})
}

func windowParams(from, to *calendar.Date) validation.Params {
	p := validation.Params{}
	if from != nil {
		p["from"] = from.String()
	}
	if to != nil {
		p["to"] = to.String()
	}
	return p
}

func imageRules() []imageRule {
	return []imageRule{
		required[[]*FileRef](func(v []*FileRef) bool { return v != nil }),
		validation.Must(validation.CodeCollectionEmpty, nil,
			func(v []*FileRef, _ input) bool { return v == nil || len(v) > 0 }),
		validation.Must(validation.CodeCollectionTooLarge, validation.Params{"max": MaxImages},
			func(v []*FileRef, _ input) bool { return len(v) <= MaxImages }),
		fileCheck(validation.CodeRequired, func(f *FileRef, _ UploadLimits) bool { return f == nil }),
		fileCheck(validation.CodeInvalidFileType, func(f *FileRef, l UploadLimits) bool {
			return f != nil && !l.AllowsExtension(f.FileName)
		}),
		fileCheck(validation.CodeEmptyFile, func(f *FileRef, _ UploadLimits) bool {
			return f != nil && f.Length == 0
		}),
		fileCheck(validation.CodeFileTooLarge, func(f *FileRef, l UploadLimits) bool {
			return f != nil && f.Length > l.MaxFileSizeBytes
		}),
	}
}

// fileCheck reports code once for the whole list, naming every offending
// position in the "indexes" param.
func fileCheck(code validation.Code, bad func(*FileRef, UploadLimits) bool) imageRule {
	return validation.Check(code, nil, func(v []*FileRef, in input) (bool, validation.Params) {
		idx := validation.Indexes(v, func(f *FileRef) bool { return bad(f, in.limits) })
		if len(idx) == 0 {
			return true, nil
		}
		return false, validation.Params{
			"indexes":            idx,
			"max_size_bytes":     in.limits.MaxFileSizeBytes,
			"max_size_megabytes": in.limits.MaxFileSizeBytes / bytesPerMegabyte,
		}
	})
}

func uniqueIDs() idsRule {
	return uniqueBy(func(id uuid.UUID) uuid.UUID { return id })
}

func uniqueBy[T any](key func(T) uuid.UUID) validation.Rule[input, []T] {
	return validation.Check(validation.CodeDuplicateEntry, nil, func(v []T, _ input) (bool, validation.Params) {
		dups := validation.Duplicates(v, key)
		if len(dups) == 0 {
			return true, nil
		}
		ids := make([]string, len(dups))
		for i, id := range dups {
			ids[i] = id.String()
		}
		return false, validation.Params{"ids": ids}
	})
}

func positiveQuantities[T any](quantity func(T) int) validation.Rule[input, []T] {
	return validation.Check(validation.CodeNonPositiveQuantity, nil, func(v []T, _ input) (bool, validation.Params) {
		idx := validation.Indexes(v, func(t T) bool { return quantity(t) <= 0 })
		if len(idx) == 0 {
			return true, nil
		}
		return false, validation.Params{"indexes": idx}
	})
}
