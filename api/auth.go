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
	"fmt"
	"net/http"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
)

// optionalCaller is the zero address when the caller header is absent.
func optionalCaller(ctx echo.Context) (common.Address, error) {
	if ctx.Request().Header.Get(CallerHeader) == "" {
		return common.Address{}, nil
	}
	return caller(ctx)
}

// role accepts a role name or its bytes32 hash.
func role(value string) (common.Hash, error) {
	if r, ok := auth.RoleByName(value); ok {
		return r, nil
	}
	if h, err := parseHash(value); err == nil {
		return h, nil
	}
	return common.Hash{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown role '%s'", value))
}

func roleName(r common.Hash) string {
	for _, known := range auth.Roles {
		if known.Role == r {
			return known.Name
		}
	}
	return r.Hex()
}

func (w Wrapper) GetUserRoles(ctx echo.Context) error {
	roles, err := w.Cl.GetUserRoles(ctx.Request().Context(), ctx.Param("did"))
	if err != nil {
		return httpError(err)
	}
	response := RolesResponse{Roles: []string{}}
	for _, r := range roles {
		response.Roles = append(response.Roles, roleName(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (w Wrapper) GrantDidRole(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &RoleRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	r, err := role(request.Role)
	if err != nil {
		return err
	}
	if err := w.Cl.GrantDidRole(ctx.Request().Context(), from, ctx.Param("did"), r); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RevokeDidRole(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	r, err := role(ctx.Param("role"))
	if err != nil {
		return err
	}
	if err := w.Cl.RevokeDidRole(ctx.Request().Context(), from, ctx.Param("did"), r); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GetRoleRequirement(ctx echo.Context) error {
	r, err := role(ctx.Param("role"))
	if err != nil {
		return err
	}
	requirement, err := w.Cl.GetRoleRequirement(ctx.Request().Context(), r)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, RequirementResponse{Role: roleName(r), CredentialType: requirement})
}

func (w Wrapper) VerifyCredential(ctx echo.Context) error {
	request := &VerifyCredentialRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	valid, err := w.Cl.VerifyCredential(ctx.Request().Context(), request.CredentialType, request.Issuer, request.Subject)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, ValidResponse{Valid: valid})
}

func (w Wrapper) RegisterDid(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &DidRegistrationRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	registration := pkg.DidRegistration{
		Controller: from,
		DID:        request.DID,
		Document:   request.Document,
		PublicKey:  request.PublicKey,
	}
	if err := w.Cl.RegisterDid(registration); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusCreated)
}

func (w Wrapper) GetDidDocument(ctx echo.Context) error {
	record, err := w.Cl.GetDidDocument(ctx.Param("did"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, record)
}

func (w Wrapper) ResolveDid(ctx echo.Context) error {
	controller, err := w.Cl.ResolveDid(ctx.Param("did"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, AddressResponse{Address: controller})
}

func (w Wrapper) IsDidActive(ctx echo.Context) error {
	active, err := w.Cl.IsDidActive(ctx.Param("did"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, ActiveResponse{Active: active})
}

func (w Wrapper) ReactivateDid(ctx echo.Context) error {
	return w.didTransaction(ctx, w.Cl.ReactivateDid)
}

func (w Wrapper) DeactivateDid(ctx echo.Context) error {
	return w.didTransaction(ctx, w.Cl.DeactivateDid)
}

// didTransaction runs a registry transaction on the :did path parameter.
func (w Wrapper) didTransaction(ctx echo.Context, transaction func(caller common.Address, did string) error) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	if err := transaction(from, ctx.Param("did")); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GetDidFromAddress(ctx echo.Context) error {
	account, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DidResponse{DID: w.Cl.GetDidFromAddress(account)})
}

func (w Wrapper) GetCallerDid(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DidResponse{DID: w.Cl.GetCallerDid(from)})
}

func (w Wrapper) GetUserRolesByAddress(ctx echo.Context) error {
	account, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	roles, err := w.Cl.GetUserRolesByAddress(ctx.Request().Context(), account)
	if err != nil {
		return httpError(err)
	}
	response := RolesResponse{Roles: []string{}}
	for _, r := range roles {
		response.Roles = append(response.Roles, roleName(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (w Wrapper) HasDidRole(ctx echo.Context) error {
	r, err := role(ctx.Param("role"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, HasRoleResponse{HasRole: w.Cl.HasDidRole(ctx.Request().Context(), ctx.Param("did"), r)})
}

func (w Wrapper) HasRole(ctx echo.Context) error {
	account, err := addressParam(ctx, "address")
	if err != nil {
		return err
	}
	r, err := role(ctx.Param("role"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, HasRoleResponse{HasRole: w.Cl.HasRole(ctx.Request().Context(), r, account)})
}

func (w Wrapper) Authenticate(ctx echo.Context) error {
	request := &AuthenticateRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	r, err := role(request.Role)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ValidResponse{Valid: w.Cl.Authenticate(ctx.Request().Context(), request.DID, r)})
}

func (w Wrapper) SetRoleRequirement(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	r, err := role(ctx.Param("role"))
	if err != nil {
		return err
	}
	request := &RequirementRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.SetRoleRequirement(ctx.Request().Context(), from, r, request.CredentialType); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) IssueCredential(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	request := &CredentialRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := w.Cl.IssueCredential(ctx.Request().Context(), from, request.CredentialType, ctx.Param("did"), request.CredentialID); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RevokeCredential(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	credentialID, err := hashParam(ctx, "credentialId")
	if err != nil {
		return err
	}
	if err := w.Cl.RevokeCredential(ctx.Request().Context(), from, ctx.Param("credentialType"), ctx.Param("did"), credentialID); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// VerifyCredentialForAction holds for the owner whatever the credential.
func (w Wrapper) VerifyCredentialForAction(ctx echo.Context) error {
	from, err := optionalCaller(ctx)
	if err != nil {
		return err
	}
	request := &CredentialCheckRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	valid := w.Cl.VerifyCredentialForAction(ctx.Request().Context(), from, request.DID, request.CredentialType, request.CredentialID)
	return ctx.JSON(http.StatusOK, ValidResponse{Valid: valid})
}

func (w Wrapper) HasRequiredRolesAndCredentials(ctx echo.Context) error {
	from, err := optionalCaller(ctx)
	if err != nil {
		return err
	}
	request := &RoleCheckRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	var roles []common.Hash
	for _, name := range request.Roles {
		r, err := role(name)
		if err != nil {
			return err
		}
		roles = append(roles, r)
	}
	valid := w.Cl.HasRequiredRolesAndCredentials(ctx.Request().Context(), from, request.DID, roles, request.CredentialIDs)
	return ctx.JSON(http.StatusOK, ValidResponse{Valid: valid})
}

// trustParams reads the :credentialType and :address path parameters.
func trustParams(ctx echo.Context) (string, common.Address, error) {
	credentialType := ctx.Param("credentialType")
	if credentialType == "" {
		return "", common.Address{}, echo.NewHTTPError(http.StatusBadRequest, "missing credential type")
	}
	issuer, err := addressParam(ctx, "address")
	return credentialType, issuer, err
}

func (w Wrapper) IsTrustedIssuer(ctx echo.Context) error {
	credentialType, issuer, err := trustParams(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TrustedResponse{Trusted: w.Cl.IsTrustedIssuer(ctx.Request().Context(), credentialType, issuer)})
}

func (w Wrapper) SetTrustedIssuer(ctx echo.Context) error {
	return w.trustTransaction(ctx, w.Cl.SetTrustedIssuer)
}

func (w Wrapper) IsIssuerTrusted(ctx echo.Context) error {
	credentialType, issuer, err := trustParams(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TrustedResponse{Trusted: w.Cl.IsIssuerTrusted(ctx.Request().Context(), credentialType, issuer)})
}

func (w Wrapper) SetIssuerTrustStatus(ctx echo.Context) error {
	return w.trustTransaction(ctx, w.Cl.SetIssuerTrustStatus)
}

func (w Wrapper) trustTransaction(ctx echo.Context, transaction func(ctx context.Context, caller common.Address, credentialType string, issuer common.Address, trusted bool) error) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	credentialType, issuer, err := trustParams(ctx)
	if err != nil {
		return err
	}
	request := &TrustRequest{}
	if err := ctx.Bind(request); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}
	if err := transaction(ctx.Request().Context(), from, credentialType, issuer, request.Trusted); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
