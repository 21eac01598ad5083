package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// TestE2E_SignUpThenPublish drives the router over a real listener with a
// resty client: sign up, publish with the returned token, then read the
// listing back. The transport asks for gzip, so the read also goes through
// the compression middleware.
func TestE2E_SignUpThenPublish(t *testing.T) {
	h, mocks := newTestHandler(t)
	account := testAccount()
	listing := testListing(account.ID)

	mocks.auth.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(account.Session(), nil)
	mocks.expectAuth(account)
	mocks.listing.EXPECT().Create(gomock.Any(), account, gomock.Any()).Return(listing, nil)
	mocks.listing.EXPECT().GetByID(gomock.Any(), listing.ID).
		Return(models.ListingDetails{Listing: listing, Owner: account.PublicProfile()}, nil)

	srv := httptest.NewServer(h.Init())
	defer srv.Close()
	client := utils.NewHTTPClient(srv.URL, 5*time.Second)

	var session models.Session
	resp, err := client.R().
		SetBody(models.SignUpRequest{Email: "bob@x.com", Username: "bob", Password: "pw1", Name: "Bob", Description: "hi"}).
		SetResult(&session).
		Post("/user/sign_up")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Equal(t, testToken, session.Token)

	var created models.Listing
	resp, err = client.R().
		SetAuthToken(session.Token).
		SetBody(models.ListingDraft{Title: "Loft", Description: "Nice", Price: 80, Location: &models.Location{Latitude: 48.85, Longitude: 2.35}}).
		SetResult(&created).
		Post("/room/publish")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, listing.ID, created.ID)

	var details models.ListingDetails
	resp, err = client.R().
		SetResult(&details).
		Get("/rooms/" + created.ID.String())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "bob", details.Owner.Account.Username)
	assert.NotEmpty(t, resp.Header().Get(traceIDHeader))
}

func TestE2E_ImmutableBeforeAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	srv := httptest.NewServer(h.Init())
	defer srv.Close()
	client := utils.NewHTTPClient(srv.URL, 5*time.Second)

	var body models.ErrorResponse
	resp, err := client.R().
		SetError(&body).
		Delete("/room/delete/" + seedRoomID.String())
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, app.MsgRoomNotEditable, body.Error)
}
