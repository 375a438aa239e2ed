package activity

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
)

type fixedClock calendar.Date

func (c fixedClock) Today() calendar.Date { return calendar.Date(c) }

type stubPolicy struct {
	exts    []string
	extsErr error
	mb      int
	mbErr   error
	reads   int
}

func (p *stubPolicy) AllowedImageExtensions() ([]string, error) {
	p.reads++
	return p.exts, p.extsErr
}

func (p *stubPolicy) MaxFileSizeMegabytes() (int, error) {
	return p.mb, p.mbErr
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	policy := &stubPolicy{exts: []string{".jpg", ".png"}, mb: 10}
	v := NewValidator(fixedClock(testToday), policy)

	r := validRequest()
	res, err := v.Validate(&r)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Valid() {
		t.Fatalf("Valid() = false, errors = %+v", res.Errors)
	}
	if policy.reads != 1 {
		t.Errorf("policy read %d times, want 1", policy.reads)
	}
}

func TestValidator_UsesClock(t *testing.T) {
	t.Parallel()

	r := validRequest()
	// The day after the planned start, the start date is in the past.
	later := fixedClock(r.EstimatedStartDate.AddDays(1))
	v := NewValidator(later, &stubPolicy{exts: []string{"jpg", "png"}, mb: 10})

	res, err := v.Validate(&r)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Has(FieldEstimatedStartDate, validation.CodeDateBeforeWindow) {
		t.Errorf("Codes(start) = %v, want date_before_window", res.Codes(FieldEstimatedStartDate))
	}
}

func TestValidator_Options(t *testing.T) {
	t.Parallel()

	policy := &stubPolicy{extsErr: errors.New("must not be read")}
	v := NewValidator(fixedClock(calendar.New(2030, time.January, 1)), policy)

	r := validRequest()
	res, err := v.Validate(&r, WithToday(testToday), WithLimits(testLimits))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Valid() {
		t.Errorf("Valid() = false, errors = %+v", res.Errors)
	}
	if policy.reads != 0 {
		t.Errorf("policy read %d times, want 0", policy.reads)
	}
}

func TestValidator_ImageTypeFollowsPolicy(t *testing.T) {
	t.Parallel()

	r := validRequest()
	r.Images = []*FileRef{{FileName: "photo.bmp", Length: 2048}}

	strict := NewValidator(fixedClock(testToday), &stubPolicy{exts: []string{".jpg", ".png"}, mb: 10})
	res, err := strict.Validate(&r)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Has(FieldImages, validation.CodeInvalidFileType) {
		t.Errorf("Codes(images) = %v, want invalid_file_type", res.Codes(FieldImages))
	}

	lenient := NewValidator(fixedClock(testToday), &stubPolicy{exts: []string{".BMP"}, mb: 10})
	res, err = lenient.Validate(&r)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Valid() {
		t.Errorf("Valid() = false with .bmp allowed, errors = %+v", res.Errors)
	}
}

func TestValidator_Misconfigured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy *stubPolicy
	}{
		{name: "extensions unreadable", policy: &stubPolicy{extsErr: errors.New("key missing"), mb: 10}},
		{name: "no extensions", policy: &stubPolicy{exts: []string{}, mb: 10}},
		{name: "size unreadable", policy: &stubPolicy{exts: []string{".jpg"}, mbErr: errors.New("not a number")}},
		{name: "zero size", policy: &stubPolicy{exts: []string{".jpg"}, mb: 0}},
		{name: "negative size", policy: &stubPolicy{exts: []string{".jpg"}, mb: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewValidator(fixedClock(testToday), tt.policy)
			r := validRequest()

			res, err := v.Validate(&r)
			if !errors.Is(err, domain.ErrMisconfigured) {
				t.Fatalf("Validate() error = %v, want ErrMisconfigured", err)
			}
			if errors.Is(err, domain.ErrValidation) {
				t.Error("misconfiguration must not be reported as a validation failure")
			}
			if len(res.Errors) != 0 {
				t.Errorf("Result = %+v, want empty", res)
			}
		})
	}
}
