/*
 *  DocuVault holds the logic for decentralized document custody
 *  Copyright (C) 2020 DocuVault contributors
 *
 *  This program is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	core "github.com/nuts-foundation/nuts-go-core"
	"github.com/nuts-foundation/nuts-go-core/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)

var owner = common.HexToAddress("0x000000000000000000000000000000000000000a")
var issuer = common.HexToAddress("0x000000000000000000000000000000000000000b")
var holder = common.HexToAddress("0x000000000000000000000000000000000000000c")
var requester = common.HexToAddress("0x000000000000000000000000000000000000000d")

type testServer struct {
	t      *testing.T
	server *echo.Echo
	dv     *pkg.DocuVault
}

func newTestServer(t *testing.T) (*testServer, func()) {
	oldClock := pkg.TimeNow
	pkg.TimeNow = func() time.Time { return now }

	dir, err := ioutil.TempDir("", "docuvault-api")
	require.NoError(t, err)
	dv := pkg.NewDocuVault(pkg.DocuVaultConfig{Owner: owner.Hex(), Datadir: dir, Mode: core.ClientEngineMode})
	require.NoError(t, dv.Configure())
	require.NoError(t, dv.Start())

	server := echo.New()
	RegisterHandlers(server, Wrapper{Cl: dv})
	return &testServer{t: t, server: server, dv: dv}, func() {
		_ = dv.Shutdown()
		_ = os.RemoveAll(dir)
		pkg.TimeNow = oldClock
	}
}

func (s *testServer) do(method, path string, from common.Address, body interface{}) *httptest.ResponseRecorder {
	var payload string
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		payload = string(data)
	}
	request := httptest.NewRequest(method, path, strings.NewReader(payload))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if from != (common.Address{}) {
		request.Header.Set(CallerHeader, from.Hex())
	}
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), v))
}

func TestWrapper_DocumentLifecycle(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	rec := s.do(http.MethodPost, "/docuvault/issuers", owner, AddressRequest{Address: issuer})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/docuvault/documents", holder, RegisterDocumentRequest{
		ContentHash:    common.HexToHash("0x1234"),
		CID:            "QmDocument",
		Holder:         holder,
		ExpirationDate: now.AddDate(1, 0, 0),
		DocumentType:   "passport",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := DocumentIDResponse{}
	decode(t, rec, &created)
	id := created.DocumentID
	assert.Equal(t, vault.GenerateDocumentID(common.HexToHash("0x1234"), holder, "QmDocument"), id)

	rec = s.do(http.MethodGet, "/docuvault/documents/"+id.Hex(), common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := DocumentInfoResponse{}
	decode(t, rec, &info)
	assert.False(t, info.Verified)
	assert.Equal(t, "PASSPORT", info.DocumentType)
	assert.Equal(t, now.Unix(), info.IssuanceDate)

	rec = s.do(http.MethodPost, "/docuvault/documents/"+id.Hex()+"/verify", issuer, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/docuvault/documents/"+id.Hex()+"/verify", issuer, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DocuVault__AlreadyVerified")

	rec = s.do(http.MethodPost, "/docuvault/documents/"+id.Hex()+"/shares", holder, ShareRequest{Requester: requester})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	consentPath := fmt.Sprintf("/docuvault/documents/%s/shares/%s/consent", id.Hex(), requester.Hex())
	rec = s.do(http.MethodPut, consentPath, holder, ConsentRequest{Consent: "GRANTED", ValidUntil: now.AddDate(0, 0, 30)})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, consentPath, common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	consent := ConsentResponse{}
	decode(t, rec, &consent)
	assert.Equal(t, "GRANTED", consent.Consent)
	assert.Equal(t, now.AddDate(0, 0, 30).Unix(), consent.ValidUntil)

	rec = s.do(http.MethodPost, fmt.Sprintf("/docuvault/documents/%s/shares/%s", id.Hex(), requester.Hex()), holder, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	shared := DocumentInfoResponse{}
	decode(t, rec, &shared)
	assert.True(t, shared.Verified)
	assert.Equal(t, holder, shared.Holder)

	rec = s.do(http.MethodDelete, consentPath, holder, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, fmt.Sprintf("/docuvault/documents/%s/shares/%s", id.Hex(), requester.Hex()), holder, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DocuVault__NotGranted")

	t.Run("holder listing", func(t *testing.T) {
		assert.Eventually(t, func() bool {
			rec := s.do(http.MethodGet, "/docuvault/holders/"+holder.Hex()+"/documents", common.Address{}, nil)
			ids := DocumentIDsResponse{}
			_ = json.Unmarshal(rec.Body.Bytes(), &ids)
			return rec.Code == http.StatusOK && len(ids.DocumentIDs) == 1 && ids.DocumentIDs[0] == id
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("verify cid", func(t *testing.T) {
		path := fmt.Sprintf("/docuvault/verify-cid?contentHash=%s&holder=%s&cid=QmDocument&documentId=%s", common.HexToHash("0x1234").Hex(), holder.Hex(), id.Hex())
		rec := s.do(http.MethodGet, path, common.Address{}, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		valid := ValidResponse{}
		decode(t, rec, &valid)
		assert.True(t, valid.Valid)
	})
}

func TestWrapper_Errors(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	t.Run("unknown document is expired", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/docuvault/documents/"+common.HexToHash("0x99").Hex(), common.Address{}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		info := DocumentInfoResponse{}
		decode(t, rec, &info)
		assert.True(t, info.Expired)
		assert.False(t, info.Verified)
		assert.Equal(t, int64(0), info.ExpirationDate)
		assert.Equal(t, "GENERIC", info.DocumentType)
	})

	t.Run("not an admin", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/docuvault/issuers", holder, AddressRequest{Address: issuer})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "DocuVault__NotAdmin")
	})

	t.Run("pause twice", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/docuvault/pause", owner, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		rec = s.do(http.MethodPost, "/docuvault/pause", owner, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		rec = s.do(http.MethodDelete, "/docuvault/pause", owner, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad document id", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/docuvault/documents/0x1234", common.Address{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown document type", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/docuvault/documents", holder, RegisterDocumentRequest{DocumentType: "LIBRARY_CARD"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown DID", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/auth/dids/did:docu:nobody/roles", common.Address{}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWrapper_Auth(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	require.NoError(t, s.dv.RegisterDid(pkg.DidRegistration{Controller: holder, DID: "did:docu:holder"}))

	rec := s.do(http.MethodPost, "/auth/dids/did:docu:holder/roles", owner, RoleRequest{Role: "ISSUER"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/auth/dids/did:docu:holder/roles", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	roles := RolesResponse{}
	decode(t, rec, &roles)
	assert.Equal(t, []string{"ISSUER_ROLE"}, roles.Roles)

	rec = s.do(http.MethodDelete, "/auth/dids/did:docu:holder/roles/ISSUER_ROLE", holder, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/auth/roles/CONSUMER_ROLE/requirement", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	requirement := RequirementResponse{}
	decode(t, rec, &requirement)
	assert.Equal(t, "CONSUMER_CREDENTIAL", requirement.CredentialType)

	rec = s.do(http.MethodPost, "/verifier/credentials/verify", common.Address{}, VerifyCredentialRequest{
		CredentialType: "HOLDER_CREDENTIAL",
		Issuer:         issuer,
		Subject:        "did:docu:holder",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DidVerifier__UntrustedIssuer")
}

func TestWrapper_Registry(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	rec := s.do(http.MethodPost, "/auth/dids", holder, DidRegistrationRequest{DID: "did:docu:holder"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/dids", holder, DidRegistrationRequest{DID: "did:docu:second"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/auth/dids", requester, DidRegistrationRequest{DID: `did:docu:a"b`})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DidRegistry__InvalidDID")

	rec = s.do(http.MethodGet, "/auth/dids/did:docu:holder", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"did":"did:docu:holder"`)

	rec = s.do(http.MethodGet, "/auth/dids/did:docu:holder/controller", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	controller := AddressResponse{}
	decode(t, rec, &controller)
	assert.Equal(t, holder, controller.Address)

	rec = s.do(http.MethodGet, "/auth/accounts/"+holder.Hex()+"/did", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	did := DidResponse{}
	decode(t, rec, &did)
	assert.Equal(t, "did:docu:holder", did.DID)

	rec = s.do(http.MethodGet, "/auth/caller/did", requester, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	did = DidResponse{}
	decode(t, rec, &did)
	assert.Equal(t, "", did.DID)

	t.Run("deactivate and reactivate", func(t *testing.T) {
		rec := s.do(http.MethodDelete, "/auth/dids/did:docu:holder/active", requester, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = s.do(http.MethodDelete, "/auth/dids/did:docu:holder/active", holder, nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		rec = s.do(http.MethodGet, "/auth/dids/did:docu:holder/active", common.Address{}, nil)
		active := ActiveResponse{}
		decode(t, rec, &active)
		assert.False(t, active.Active)

		rec = s.do(http.MethodDelete, "/auth/dids/did:docu:holder/active", holder, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = s.do(http.MethodPut, "/auth/dids/did:docu:holder/active", holder, nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	})

	t.Run("unknown DID", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/auth/dids/did:docu:nobody/controller", common.Address{}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWrapper_Credentials(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	credentialID := common.HexToHash("0xc0ffee")
	check := RoleCheckRequest{DID: "did:docu:holder", Roles: []string{"CONSUMER_ROLE"}, CredentialIDs: []common.Hash{credentialID}}

	rec := s.do(http.MethodPost, "/auth/dids", holder, DidRegistrationRequest{DID: "did:docu:holder"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/dids/did:docu:holder/roles", owner, RoleRequest{Role: "CONSUMER"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/auth/dids/did:docu:holder/roles/CONSUMER_ROLE", common.Address{}, nil)
	hasRole := HasRoleResponse{}
	decode(t, rec, &hasRole)
	assert.True(t, hasRole.HasRole)

	rec = s.do(http.MethodGet, "/auth/accounts/"+holder.Hex()+"/roles/CONSUMER_ROLE", common.Address{}, nil)
	hasRole = HasRoleResponse{}
	decode(t, rec, &hasRole)
	assert.True(t, hasRole.HasRole)

	rec = s.do(http.MethodGet, "/auth/accounts/"+holder.Hex()+"/roles", common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	roles := RolesResponse{}
	decode(t, rec, &roles)
	assert.Equal(t, []string{"CONSUMER_ROLE"}, roles.Roles)

	rec = s.do(http.MethodPost, "/auth/authenticate", common.Address{}, AuthenticateRequest{DID: "did:docu:holder", Role: "CONSUMER_ROLE"})
	valid := ValidResponse{}
	decode(t, rec, &valid)
	assert.True(t, valid.Valid)

	rec = s.do(http.MethodPost, "/auth/roles/check", requester, check)
	require.Equal(t, http.StatusOK, rec.Code)
	valid = ValidResponse{}
	decode(t, rec, &valid)
	assert.False(t, valid.Valid)

	rec = s.do(http.MethodPost, "/auth/dids/did:docu:holder/credentials", holder, CredentialRequest{CredentialType: "CONSUMER_CREDENTIAL", CredentialID: credentialID})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/auth/dids/did:docu:holder/credentials", owner, CredentialRequest{CredentialType: "CONSUMER_CREDENTIAL", CredentialID: credentialID})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/roles/check", requester, check)
	valid = ValidResponse{}
	decode(t, rec, &valid)
	assert.True(t, valid.Valid)

	rec = s.do(http.MethodPost, "/auth/credentials/verify", common.Address{}, CredentialCheckRequest{DID: "did:docu:holder", CredentialType: "CONSUMER_CREDENTIAL", CredentialID: credentialID})
	valid = ValidResponse{}
	decode(t, rec, &valid)
	assert.True(t, valid.Valid)

	t.Run("requirement change", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/auth/roles/CONSUMER_ROLE/requirement", holder, RequirementRequest{CredentialType: "NEW_CREDENTIAL"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = s.do(http.MethodPut, "/auth/roles/CONSUMER_ROLE/requirement", owner, RequirementRequest{CredentialType: "NEW_CREDENTIAL"})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = s.do(http.MethodPost, "/auth/roles/check", requester, check)
		valid := ValidResponse{}
		decode(t, rec, &valid)
		assert.False(t, valid.Valid)

		rec = s.do(http.MethodPut, "/auth/roles/CONSUMER_ROLE/requirement", owner, RequirementRequest{CredentialType: "CONSUMER_CREDENTIAL"})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	})

	t.Run("revoke", func(t *testing.T) {
		path := fmt.Sprintf("/auth/dids/did:docu:holder/credentials/CONSUMER_CREDENTIAL/%s", credentialID.Hex())
		rec := s.do(http.MethodDelete, path, owner, nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		rec = s.do(http.MethodDelete, path, owner, nil)
		assert.Contains(t, rec.Body.String(), "DidAuth__CredentialNotIssued")

		rec = s.do(http.MethodPost, "/auth/roles/check", requester, check)
		valid := ValidResponse{}
		decode(t, rec, &valid)
		assert.False(t, valid.Valid)
	})

	t.Run("owner bypass", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/auth/roles/check", owner, RoleCheckRequest{Roles: []string{"ADMIN_ROLE"}})
		valid := ValidResponse{}
		decode(t, rec, &valid)
		assert.True(t, valid.Valid)
	})
}

func TestWrapper_Trust(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	rec := s.do(http.MethodPost, "/auth/dids", holder, DidRegistrationRequest{DID: "did:docu:holder"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, prefix := range []string{"/auth", "/verifier"} {
		t.Run(prefix, func(t *testing.T) {
			path := fmt.Sprintf("%s/trusted-issuers/HOLDER_CREDENTIAL/%s", prefix, issuer.Hex())

			rec := s.do(http.MethodPut, path, holder, TrustRequest{Trusted: true})
			assert.Equal(t, http.StatusForbidden, rec.Code)

			rec = s.do(http.MethodPut, path, owner, TrustRequest{Trusted: true})
			require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

			rec = s.do(http.MethodGet, path, common.Address{}, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			trusted := TrustedResponse{}
			decode(t, rec, &trusted)
			assert.True(t, trusted.Trusted)
		})
	}

	rec = s.do(http.MethodPost, "/verifier/credentials/verify", common.Address{}, VerifyCredentialRequest{
		CredentialType: "HOLDER_CREDENTIAL",
		Issuer:         issuer,
		Subject:        "did:docu:holder",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	valid := ValidResponse{}
	decode(t, rec, &valid)
	assert.True(t, valid.Valid)
}

func TestWrapper_VaultQueries(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	rec := s.do(http.MethodGet, "/docuvault/admins/"+owner.Hex(), common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	admin := AdminResponse{}
	decode(t, rec, &admin)
	assert.True(t, admin.Admin)

	rec = s.do(http.MethodGet, "/docuvault/admins/"+holder.Hex(), common.Address{}, nil)
	admin = AdminResponse{}
	decode(t, rec, &admin)
	assert.False(t, admin.Admin)

	rec = s.do(http.MethodPost, "/docuvault/pause", owner, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/docuvault/pause", common.Address{}, nil)
	paused := PausedResponse{}
	decode(t, rec, &paused)
	assert.True(t, paused.Paused)
	rec = s.do(http.MethodDelete, "/docuvault/pause", owner, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/docuvault/issuers", owner, AddressRequest{Address: issuer})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = s.do(http.MethodPost, "/docuvault/documents", issuer, RegisterDocumentRequest{
		ContentHash:    common.HexToHash("0x1234"),
		CID:            "QmDocument",
		Holder:         holder,
		ExpirationDate: now.AddDate(1, 0, 0),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := DocumentIDResponse{}
	decode(t, rec, &created)

	assert.Eventually(t, func() bool {
		rec := s.do(http.MethodGet, "/docuvault/issuers/"+issuer.Hex()+"/documents", common.Address{}, nil)
		ids := DocumentIDsResponse{}
		_ = json.Unmarshal(rec.Body.Bytes(), &ids)
		return rec.Code == http.StatusOK && len(ids.DocumentIDs) == 1 && ids.DocumentIDs[0] == created.DocumentID
	}, time.Second, 10*time.Millisecond)
}

func TestWrapper_Issuer(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	hash := common.HexToHash("0xfeed")

	rec := s.do(http.MethodPost, "/issuer/documents", holder, IssueDocumentRequest{Hash: hash})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only issuer can call this function")

	rec = s.do(http.MethodPost, "/issuer/documents", owner, IssueDocumentRequest{Hash: hash})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/issuer/documents/"+hash.Hex(), common.Address{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), strings.ToLower(owner.Hex()[2:]))

	rec = s.do(http.MethodDelete, "/issuer/documents/"+hash.Hex(), owner, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, "/issuer/documents/"+hash.Hex(), owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("added issuer", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/issuer/issuers", holder, AddressRequest{Address: issuer})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = s.do(http.MethodPost, "/issuer/issuers", owner, AddressRequest{Address: issuer})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		rec = s.do(http.MethodPost, "/issuer/documents", issuer, IssueDocumentRequest{Hash: hash})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = s.do(http.MethodGet, "/issuer/documents/"+hash.Hex(), common.Address{}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		record := issuerRecord{}
		decode(t, rec, &record)
		assert.Equal(t, owner, record.Issuer)
		assert.Equal(t, issuer, record.Caller)
	})
}

type issuerRecord struct {
	Issuer common.Address `json:"issuer"`
	Caller common.Address `json:"caller"`
}

func TestWrapper_Caller(t *testing.T) {
	t.Run("It handles a missing caller header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		echoServer := mock.NewMockContext(ctrl)
		echoServer.EXPECT().Request().Return(httptest.NewRequest(http.MethodPost, "/docuvault/pause", nil))

		err := Wrapper{}.Pause(echoServer)
		if assert.Error(t, err) {
			assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
		}
	})

	t.Run("It handles an invalid document id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.Header.Set(CallerHeader, holder.Hex())
		echoServer := mock.NewMockContext(ctrl)
		echoServer.EXPECT().Request().Return(request)
		echoServer.EXPECT().Param("id").Return("not-a-hash")

		err := Wrapper{}.VerifyDocument(echoServer)
		if assert.Error(t, err) {
			assert.Equal(t, "'not-a-hash' is not a bytes32 hex value", err.(*echo.HTTPError).Message)
		}
	})

	t.Run("It handles an unknown consent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		request := httptest.NewRequest(http.MethodPut, "/", nil)
		request.Header.Set(CallerHeader, holder.Hex())
		echoServer := mock.NewMockContext(ctrl)
		echoServer.EXPECT().Request().Return(request)
		echoServer.EXPECT().Param("id").Return(common.HexToHash("0x01").Hex())
		echoServer.EXPECT().Param("requester").Return(requester.Hex())
		echoServer.EXPECT().Bind(gomock.Any()).Do(func(f interface{}) {
			_ = json.Unmarshal([]byte(`{"consent":"MAYBE"}`), f)
		})

		err := Wrapper{}.GiveConsent(echoServer)
		if assert.Error(t, err) {
			assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
		}
	})
}
