package partners_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/modules/partners"
	"github.com/gridgarden/landing/internal/pubsub"
	"github.com/gridgarden/landing/internal/registry"
	"github.com/gridgarden/landing/internal/rendering"
	"github.com/gridgarden/landing/internal/storage"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	e      *echo.Echo
	repo   domain.InquiryRepository
	site   *content.Site
	mailer *recordingMailer
}

type sentEmail struct {
	to, subject, body string
}

// recordingMailer captures notifications instead of sending them.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func (m *recordingMailer) emails() []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentEmail(nil), m.sent...)
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	bus := pubsub.NewWatermillBridge(false)
	t.Cleanup(func() { _ = bus.Close() })

	site := content.MustDefault()
	reg := registry.New(nil)
	registry.Set(reg, registry.ContentStoreKey, content.NewStore(site))

	mailer := &recordingMailer{}
	mod := partners.New(partners.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Repository: storage.NewInquiryStore(storage.NewAferoStore(afero.NewMemMapFs())),
		RateLimit:  5,
		Mailer:     mailer,
		Inbox:      "partneri@gridgarden.sk",
	})
	require.NoError(t, mod.Register(reg))

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	require.NoError(t, mod.Boot(ctx, e.Group(""), reg))

	return &testEnv{
		e:      e,
		repo:   registry.MustGet(reg, registry.InquiryRepositoryKey),
		site:   site,
		mailer: mailer,
	}
}

func (env *testEnv) post(form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/partners/inquiries", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.RemoteAddr = "203.0.113.9:5000"
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":         {"Lucia Horváthová"},
		"email":        {"lucia@studio-zahrada.sk"},
		"company":      {"Studio Záhrada"},
		"partner_type": {"architect"},
		"message":      {"We plan raised beds for a residential courtyard."},
	}
}

func TestInquiryPost_HTMXStoresInquiry(t *testing.T) {
	env := setup(t)

	rec := env.post(validForm(), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), env.site.Partners.FormSuccess)

	var stored []*domain.Inquiry
	require.Eventually(t, func() bool {
		var err error
		stored, err = env.repo.List(context.Background())
		return err == nil && len(stored) == 1
	}, 2*time.Second, 10*time.Millisecond)

	got := stored[0]
	assert.Equal(t, "Lucia Horváthová", got.Name)
	assert.Equal(t, "architect", got.PartnerType)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.ReceivedAt.IsZero())
}

func TestInquiryPost_NotifiesInbox(t *testing.T) {
	env := setup(t)

	require.Equal(t, http.StatusOK, env.post(validForm(), true).Code)

	require.Eventually(t, func() bool {
		return len(env.mailer.emails()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sent := env.mailer.emails()[0]
	assert.Equal(t, "partneri@gridgarden.sk", sent.to)
	assert.Equal(t, "New partner inquiry: Lucia Horváthová (Pre architektov)", sent.subject)
	assert.Contains(t, sent.body, "lucia@studio-zahrada.sk")
	assert.Contains(t, sent.body, "Studio Záhrada")
	assert.Contains(t, sent.body, "We plan raised beds for a residential courtyard.")
}

func TestInquiryPost_HTMXRejectsInvalid(t *testing.T) {
	env := setup(t)

	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("partner_type", "plumber")
	form.Set("message", "   ")

	rec := env.post(form, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Email must be a valid email address")
	assert.Contains(t, body, "Partner type must be one of the listed programs")
	assert.Contains(t, body, "Message is required")
	assert.Less(t, strings.Index(body, "Email"), strings.Index(body, "Partner type"))

	time.Sleep(50 * time.Millisecond)
	stored, err := env.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, env.mailer.emails())
}

func TestInquiryPost_PlainFormRedirects(t *testing.T) {
	env := setup(t)

	rec := env.post(validForm(), false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#partners", rec.Header().Get(echo.HeaderLocation))
	assert.NotEmpty(t, rec.Result().Cookies(), "flash cookie should be set")

	form := validForm()
	form.Del("name")
	rec = env.post(form, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?partner_type=architect#partners", rec.Header().Get(echo.HeaderLocation))
}

func TestInquiryPost_RateLimited(t *testing.T) {
	env := setup(t)

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, env.post(validForm(), true).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, env.post(validForm(), true).Code)
}

// failingPublisher simulates an unavailable bus.
type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, pubsub.Message) error { return errors.New("bus down") }
func (failingPublisher) Close() error { return nil }

func TestService_Submit(t *testing.T) {
	store := content.NewStore(content.MustDefault())

	t.Run("validation error wraps ErrInvalidInquiry", func(t *testing.T) {
		svc := partners.NewService(failingPublisher{}, store)
		_, err := svc.Submit(context.Background(), partners.InquiryRequest{PartnerType: "developer"})

		var verr *partners.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, domain.ErrInvalidInquiry)
		assert.Equal(t, []string{"Name is required", "Email is required", "Message is required"}, verr.Messages())
	})

	t.Run("publish failure is not a validation error", func(t *testing.T) {
		svc := partners.NewService(failingPublisher{}, store)
		req := partners.InquiryRequest{
			Name: "Peter", Email: "peter@example.com", PartnerType: "garden-center", Message: "Dropshipping?",
		}
		_, err := svc.Submit(context.Background(), req)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidInquiry)
		assert.Contains(t, err.Error(), "bus down")
	})
}
