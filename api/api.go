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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/verifier"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/Modern-Miracle/NGDocuVault-sub001/issuer"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"
)

// Wrapper exposes the DocuVault transactions and queries over http.
type Wrapper struct {
	Cl *pkg.DocuVault
}

// caller returns the address in the X-Caller-Address header.
func caller(ctx echo.Context) (common.Address, error) {
	value := ctx.Request().Header.Get(CallerHeader)
	if !common.IsHexAddress(value) {
		return common.Address{}, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("missing or invalid %s header", CallerHeader))
	}
	return common.HexToAddress(value), nil
}

func hashParam(ctx echo.Context, name string) (common.Hash, error) {
	return parseHash(ctx.Param(name))
}

func parseHash(value string) (common.Hash, error) {
	b, err := hexutil.Decode(value)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("'%s' is not a bytes32 hex value", value))
	}
	return common.BytesToHash(b), nil
}

func addressParam(ctx echo.Context, name string) (common.Address, error) {
	return parseAddress(ctx.Param(name))
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("'%s' is not an address", value))
	}
	return common.HexToAddress(value), nil
}

// documentType parses a type name, the empty name is GENERIC.
func documentType(name string) (vault.DocumentType, error) {
	if name == "" {
		return vault.Generic, nil
	}
	t, ok := vault.ParseDocumentType(name)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown document type '%s'", name))
	}
	return t, nil
}

var forbidden = []error{
	vault.ErrNotAdmin, vault.ErrNotIssuer, vault.ErrNotHolder, vault.ErrNotAuthorized,
	auth.ErrUnauthorized, verifier.ErrUnauthorized, identity.ErrUnauthorized,
	issuer.ErrOnlyIssuer, issuer.ErrOnlyOwner,
}

var notFound = []error{
	vault.ErrNotRegistered, identity.ErrInvalidDID, issuer.ErrUnknownDocument,
}

var conflict = []error{
	vault.ErrAlreadyRegistered, vault.ErrAlreadyVerified, vault.ErrIssuerRegistered, vault.ErrNotActive,
	vault.ErrIsActive, vault.ErrAlreadyAdmin, vault.ErrEnforcedPause, vault.ErrExpectedPause,
	identity.ErrAlreadyRegistered, identity.ErrActive, identity.ErrDeactivated,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// httpError maps a contract error to a status code. The message is the error itself so clients
// can match on the error names.
func httpError(err error) error {
	switch {
	case errors.Is(err, pkg.ErrNotStarted):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case isAny(err, forbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case isAny(err, notFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case isAny(err, conflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

func (r RegisterDocumentRequest) registration() (pkg.DocumentRegistration, error) {
	t, err := documentType(r.DocumentType)
	if err != nil {
		return pkg.DocumentRegistration{}, err
	}
	registration := pkg.DocumentRegistration{
		ContentHash:    r.ContentHash,
		CID:            r.CID,
		Holder:         r.Holder,
		ExpirationDate: r.ExpirationDate,
		DocumentType:   t,
	}
	if r.IssuanceDate != nil {
		registration.IssuanceDate = *r.IssuanceDate
	}
	return registration, nil
}

func (w Wrapper) RegisterDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &RegisterDocumentRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	registration, err := request.registration()
	if err != nil {
		return err
	}
	id, err := w.Cl.RegisterDocument(ctx.Request().Context(), from, registration)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, DocumentIDResponse{DocumentID: id})
}

func (w Wrapper) RegisterDocuments(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &RegisterDocumentsRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	var registrations []pkg.DocumentRegistration
	for _, r := range request.Documents {
		registration, err := r.registration()
		if err != nil {
			return err
		}
		registrations = append(registrations, registration)
	}
	ids, err := w.Cl.RegisterDocuments(ctx.Request().Context(), from, registrations)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, DocumentIDsResponse{DocumentIDs: ids})
}

func (w Wrapper) GetDocumentInfo(ctx echo.Context) error {
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	info, err := w.Cl.GetDocumentInfo(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, documentInfoResponse(id, info))
}

func (w Wrapper) UpdateDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	oldID, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	request := &UpdateDocumentRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	t, err := documentType(request.DocumentType)
	if err != nil {
		return err
	}
	id, err := w.Cl.UpdateDocument(ctx.Request().Context(), from, oldID, request.ContentHash, request.CID, request.ExpirationDate, t)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, DocumentIDResponse{DocumentID: id})
}

func (w Wrapper) VerifyDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := w.Cl.VerifyDocument(ctx.Request().Context(), from, id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) VerifyDocuments(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &DocumentIDsRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.VerifyDocuments(ctx.Request().Context(), from, request.DocumentIDs); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RequestVerification(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := w.Cl.RequestVerification(ctx.Request().Context(), from, id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RequestShare(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	request := &ShareRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.RequestShare(ctx.Request().Context(), from, id, request.Requester); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GiveConsent(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	requester, err := addressParam(ctx, "requester")
	if err != nil {
		return err
	}
	request := &ConsentRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	consent, ok := vault.ParseConsentStatus(request.Consent)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown consent '%s'", request.Consent))
	}
	if err := w.Cl.GiveConsent(ctx.Request().Context(), from, id, requester, consent, request.ValidUntil); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RevokeConsent(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	requester, err := addressParam(ctx, "requester")
	if err != nil {
		return err
	}
	if err := w.Cl.RevokeConsent(ctx.Request().Context(), from, id, requester); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GetConsentStatus(ctx echo.Context) error {
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	requester, err := addressParam(ctx, "requester")
	if err != nil {
		return err
	}
	consent, validUntil, err := w.Cl.GetConsentStatus(ctx.Request().Context(), id, requester)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, ConsentResponse{Consent: consent.String(), ValidUntil: unix(validUntil)})
}

func (w Wrapper) ShareDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := hashParam(ctx, "id")
	if err != nil {
		return err
	}
	requester, err := addressParam(ctx, "requester")
	if err != nil {
		return err
	}
	info, err := w.Cl.ShareDocument(ctx.Request().Context(), from, id, requester)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, documentInfoResponse(id, info))
}

func (w Wrapper) VerifyCid(ctx echo.Context) error {
	contentHash, err := parseHash(ctx.QueryParam("contentHash"))
	if err != nil {
		return err
	}
	holder, err := parseAddress(ctx.QueryParam("holder"))
	if err != nil {
		return err
	}
	id, err := parseHash(ctx.QueryParam("documentId"))
	if err != nil {
		return err
	}
	valid := vault.VerifyCid(contentHash, holder, ctx.QueryParam("cid"), id)
	return ctx.JSON(http.StatusOK, ValidResponse{Valid: valid})
}

func (w Wrapper) GetDocumentsByHolder(ctx echo.Context) error {
	holder, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	ids, err := w.Cl.GetDocumentsByHolder(ctx.Request().Context(), holder)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, DocumentIDsResponse{DocumentIDs: ids})
}

func (w Wrapper) GetPendingVerifications(ctx echo.Context) error {
	ids, err := w.Cl.GetPendingVerifications(ctx.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, DocumentIDsResponse{DocumentIDs: ids})
}

func (w Wrapper) RegisterIssuer(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &AddressRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.RegisterIssuer(ctx.Request().Context(), from, request.Address); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) SetIssuerActive(ctx echo.Context) error {
	return w.accountTransaction(ctx, w.Cl.ActivateIssuer)
}

func (w Wrapper) DeactivateIssuer(ctx echo.Context) error {
	return w.accountTransaction(ctx, w.Cl.DeactivateIssuer)
}

func (w Wrapper) GetIssuer(ctx echo.Context) error {
	issuer, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	active, err := w.Cl.IsIssuerActive(ctx.Request().Context(), issuer)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, ActiveResponse{Active: active})
}

func (w Wrapper) GetDocumentsByIssuer(ctx echo.Context) error {
	issuer, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	ids, err := w.Cl.GetDocumentsByIssuer(ctx.Request().Context(), issuer)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, DocumentIDsResponse{DocumentIDs: ids})
}

func (w Wrapper) IsAdmin(ctx echo.Context) error {
	account, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	admin, err := w.Cl.IsAdmin(ctx.Request().Context(), account)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, AdminResponse{Admin: admin})
}

func (w Wrapper) AddAdmin(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &AddressRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.AddAdmin(ctx.Request().Context(), from, request.Address); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RemoveAdmin(ctx echo.Context) error {
	return w.accountTransaction(ctx, w.Cl.RemoveAdmin)
}

// accountTransaction runs a transaction on the :address path parameter.
func (w Wrapper) accountTransaction(ctx echo.Context, transaction func(ctx context.Context, caller, account common.Address) error) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	account, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	if err := transaction(ctx.Request().Context(), from, account); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) Paused(ctx echo.Context) error {
	paused, err := w.Cl.Paused(ctx.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, PausedResponse{Paused: paused})
}

func (w Wrapper) Pause(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	if err := w.Cl.Pause(ctx.Request().Context(), from); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) Unpause(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	if err := w.Cl.Unpause(ctx.Request().Context(), from); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) IssueDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &IssueDocumentRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.IssueDocument(from, request.Hash); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RevokeIssuedDocument(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	hash, err := hashParam(ctx, "hash")
	if err != nil {
		return err
	}
	if err := w.Cl.RevokeIssuedDocument(from, hash); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GetIssuedDocument(ctx echo.Context) error {
	hash, err := hashParam(ctx, "hash")
	if err != nil {
		return err
	}
	record, err := w.Cl.GetIssuedDocument(hash)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, record)
}

func (w Wrapper) AddCredentialIssuer(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &AddressRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.AddCredentialIssuer(from, request.Address); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
