// Package contact accepts enquiries submitted through the contact overlay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/observability"
	"nessco.org/home-web/internal/requestctx"
)

// FormID identifies the home page enquiry form to downstream systems.
const FormID = "HomePage/Enquire"

// Enquiry outcomes used as metric labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

const (
	maxShortField = 120
	maxMessage    = 4000
)

var (
	// ErrInvalid is wrapped by every ValidationError.
	ErrInvalid = errors.New("contact: invalid enquiry")
	// ErrForward is returned when an accepted enquiry could not be delivered.
	ErrForward = errors.New("contact: forward enquiry")
)

// Submission is the raw form input.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// Enquiry is a validated submission ready for delivery.
type Enquiry struct {
	ID         string    `json:"id"`
	FormID     string    `json:"formId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Message    string    `json:"message"`
	Locale     string    `json:"locale"`
	Country    string    `json:"country"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ValidationError maps form fields to the i18n key describing the problem.
type ValidationError struct {
	fields map[string]string
}

func (e *ValidationError) Error() string {
	names := e.Names()
	return fmt.Sprintf("%s: %s", ErrInvalid.Error(), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Fields returns a copy of field -> message key.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// Names lists the invalid fields in sorted order.
func (e *ValidationError) Names() []string {
	names := make([]string, 0, len(e.fields))
	for k := range e.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate trims the submission and checks every field. Name, email and message
// are required; phone and company are optional.
func Validate(s Submission) (Submission, error) {
	s = Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   strings.TrimSpace(s.Phone),
		Company: strings.TrimSpace(s.Company),
		Message: strings.TrimSpace(s.Message),
	}
	fields := map[string]string{}

	required := func(field, value string, limit int) {
		switch {
		case value == "":
			fields[field] = "contact.required"
		case utf8.RuneCountInString(value) > limit:
			fields[field] = "contact.tooLong"
		}
	}
	required("name", s.Name, maxShortField)
	required("email", s.Email, maxShortField)
	required("message", s.Message, maxMessage)

	if _, bad := fields["email"]; !bad {
		if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
			fields["email"] = "contact.invalidEmail"
		}
	}
	if s.Phone != "" && !validPhone(s.Phone) {
		fields["phone"] = "contact.invalidPhone"
	}
	if utf8.RuneCountInString(s.Company) > maxShortField {
		fields["company"] = "contact.tooLong"
	}

	if len(fields) > 0 {
		return s, &ValidationError{fields: fields}
	}
	return s, nil
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	return digits >= 6 && digits <= 15
}

// Forwarder delivers accepted enquiries.
type Forwarder interface {
	Forward(ctx context.Context, e Enquiry) error
}

// LogForwarder records enquiries in the request log. It is used when no webhook is
// configured.
type LogForwarder struct{}

func (LogForwarder) Forward(ctx context.Context, e Enquiry) error {
	requestctx.Logger(ctx).Info("contact: enquiry received",
		zap.String("enquiry_id", e.ID),
		zap.String("form_id", e.FormID),
		zap.String("locale", e.Locale),
		zap.String("country", e.Country),
	)
	return nil
}

// Service validates, identifies and forwards enquiries.
type Service struct {
	forwarder Forwarder
	now       func() time.Time
	newID     func() string
}

// NewService forwards through f, or logs enquiries when f is nil.
func NewService(f Forwarder) *Service {
	if f == nil {
		f = LogForwarder{}
	}
	return &Service{
		forwarder: f,
		now:       time.Now,
		newID:     func() string { return ulid.Make().String() },
	}
}

// Submit validates s and forwards it. Validation failures return a
// *ValidationError; delivery failures wrap ErrForward.
func (svc *Service) Submit(ctx context.Context, s Submission, site requestctx.Site) (Enquiry, error) {
	logger := requestctx.Logger(ctx)
	clean, err := Validate(s)
	if err != nil {
		observability.Enquiries.WithLabelValues(OutcomeInvalid).Inc()
		return Enquiry{}, err
	}

	e := Enquiry{
		ID:         svc.newID(),
		FormID:     FormID,
		Name:       clean.Name,
		Email:      clean.Email,
		Phone:      clean.Phone,
		Company:    clean.Company,
		Message:    clean.Message,
		Locale:     site.Locale,
		Country:    site.Country,
		ReceivedAt: svc.now().UTC(),
	}
	if err := svc.forwarder.Forward(ctx, e); err != nil {
		observability.Enquiries.WithLabelValues(OutcomeFailed).Inc()
		logger.Error("contact: forward failed", zap.String("enquiry_id", e.ID), zap.Error(err))
		return e, fmt.Errorf("%w %s: %w", ErrForward, e.ID, err)
	}
	observability.Enquiries.WithLabelValues(OutcomeAccepted).Inc()
	return e, nil
}
