package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
	"github.com/MKhiriev/go-airbnb-api/internal/service/mock"
	"github.com/MKhiriev/go-airbnb-api/models"
)

const testToken = "token-0"

var (
	seedUserID = uuid.MustParse("0190a3f0-0000-7000-8000-000000000001")
	seedRoomID = uuid.MustParse("0190a3f0-0000-7000-8000-000000000002")
	seedEmail  = "alice@airbnb-api.com"
)

type testServices struct {
	auth    *mock.MockAuthService
	account *mock.MockAccountService
	listing *mock.MockListingService
	reset   *mock.MockPasswordResetService
	info    *mock.MockAppInfoService
}

// newTestHandler returns a handler backed by service mocks. Seed resources
// are protected by the immutable guard.
func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		account: mock.NewMockAccountService(ctrl),
		listing: mock.NewMockListingService(ctrl),
		reset:   mock.NewMockPasswordResetService(ctrl),
		info:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:          mocks.auth,
		AccountService:       mocks.account,
		ListingService:       mocks.listing,
		PasswordResetService: mocks.reset,
		AppInfoService:       mocks.info,
		ImmutableGuard: service.NewImmutableGuard(config.Immutable{
			UserIDs: []uuid.UUID{seedUserID},
			RoomIDs: []uuid.UUID{seedRoomID},
			Emails:  []string{seedEmail},
		}),
	}

	return NewHandler(services, logger.Nop()), mocks
}

func testAccount() models.Account {
	return models.Account{
		ID:         uuid.MustParse("0190a3f0-0000-7000-8000-0000000000aa"),
		Email:      "bob@x.com",
		Username:   "bob",
		Credential: models.Credential{Salt: "salt", Hash: "hash", Token: testToken},
		Profile:    models.AccountProfile{Name: "Bob", Description: "hi"},
	}
}

// expectAuth makes the auth mock resolve testToken to account.
func (s testServices) expectAuth(account models.Account) {
	s.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(account, nil)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

// multipartBody builds a form with fields and, when file is non-nil, a
// "picture" file part.
func multipartBody(t *testing.T, fields map[string]string, file []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		part, err := mw.CreateFormFile(pictureField, "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func ptr[T any](v T) *T { return &v }

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
