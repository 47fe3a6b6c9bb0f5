package screens

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"wateen/client/internal/api"
	"wateen/client/internal/forms"
	"wateen/client/internal/locale"
	"wateen/client/internal/models"
	"wateen/client/internal/session"
)

type Route string

const (
	RouteSplash        Route = "splash"
	RouteLogin         Route = "login"
	RouteSignup        Route = "signup"
	RouteOnboarding    Route = "onboarding"
	RouteAddMedication Route = "medication/add"
	RouteDashboard     Route = "dashboard"
	RouteQuit          Route = "quit"
)

// Backend is the slice of the REST client the screens call. Tests swap in
// a fake to check how many requests a screen issued.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Register(ctx context.Context, username, email, password string) error
	UpdateProfile(ctx context.Context, profile models.OnboardingProfile) error
	CreateMedication(ctx context.Context, req models.CreateMedicationRequest) (*models.Medication, error)
	ListMedications(ctx context.Context) ([]models.Medication, error)
	ConfirmRefill(ctx context.Context, confirmation models.RefillConfirmation) error
	RespondToReminder(ctx context.Context, response models.AdherenceResponse) error
	LogSideEffect(ctx context.Context, report models.SideEffectReport) error
	Insights(ctx context.Context) (*models.Insights, error)
}

// RefillAlerts is the poller surface the dashboard reads.
type RefillAlerts interface {
	Alerts() []models.RefillAlert
	Snooze(medicationID int64)
	Dismiss(medicationID int64)
}

// PushSubscriber runs the one-shot push registration the first time the
// dashboard mounts.
type PushSubscriber interface {
	Subscribe(ctx context.Context)
}

// Controllers wires every screen to the stores and the backend. Each
// screen method renders, submits at most one request, and returns the next
// route.
type Controllers struct {
	term    *Terminal
	backend Backend
	session *session.Store
	locale  *locale.Store
	refills RefillAlerts
	push    PushSubscriber
	pushed  sync.Once
	log     zerolog.Logger
}

func NewControllers(term *Terminal, backend Backend, sess *session.Store, loc *locale.Store, refills RefillAlerts, pushSub PushSubscriber, log zerolog.Logger) *Controllers {
	return &Controllers{
		term:    term,
		backend: backend,
		session: sess,
		locale:  loc,
		refills: refills,
		push:    pushSub,
		log:     log,
	}
}

// Run drives the route loop until the user quits or input ends.
func (c *Controllers) Run(ctx context.Context) {
	route := RouteSplash
	for route != RouteQuit {
		if ctx.Err() != nil {
			return
		}
		switch route {
		case RouteSplash:
			route = c.Splash(ctx)
		case RouteLogin:
			route = c.Login(ctx)
		case RouteSignup:
			route = c.Signup(ctx)
		case RouteOnboarding:
			route = c.Onboarding(ctx)
		case RouteAddMedication:
			route = c.AddMedication(ctx)
		case RouteDashboard:
			route = c.Dashboard(ctx)
		default:
			route = RouteQuit
		}
		if c.term.EOF() {
			return
		}
	}
}

// showSubmitError renders the single free-text message near the submit
// control; field errors were already echoed inline.
func (c *Controllers) showSubmitError(form *forms.Form, err error) {
	if errors.Is(err, forms.ErrInvalid) || errors.Is(err, forms.ErrSubmitting) {
		c.term.Println("  ! " + err.Error())
		return
	}
	msg := form.SubmissionError()
	if msg == "" {
		msg = c.locale.T("error.generic")
	}
	c.term.Println("  ! " + msg)
}

// fill prompts for one field and revalidates on every change, echoing the
// inline error and reprompting while input remains.
func (c *Controllers) fill(form *forms.Form, field forms.Field, read func() any) {
	for {
		form.Set(field.Name, read())
		msg := form.FieldError(field.Name)
		if msg == "" || c.term.EOF() {
			return
		}
		c.term.Println("  ! " + msg)
	}
}
