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
	core "github.com/nuts-foundation/nuts-go-core"
)

// RegisterHandlers adds the DocuVault routes to router.
func RegisterHandlers(router core.EchoRouter, w Wrapper) {
	router.POST("/docuvault/documents", w.RegisterDocument)
	router.POST("/docuvault/documents/batch", w.RegisterDocuments)
	router.POST("/docuvault/documents/verify", w.VerifyDocuments)
	router.GET("/docuvault/documents/:id", w.GetDocumentInfo)
	router.PUT("/docuvault/documents/:id", w.UpdateDocument)
	router.POST("/docuvault/documents/:id/verify", w.VerifyDocument)
	router.POST("/docuvault/documents/:id/verification-request", w.RequestVerification)
	router.POST("/docuvault/documents/:id/shares", w.RequestShare)
	router.POST("/docuvault/documents/:id/shares/:requester", w.ShareDocument)
	router.GET("/docuvault/documents/:id/shares/:requester/consent", w.GetConsentStatus)
	router.PUT("/docuvault/documents/:id/shares/:requester/consent", w.GiveConsent)
	router.DELETE("/docuvault/documents/:id/shares/:requester/consent", w.RevokeConsent)
	router.GET("/docuvault/verifications", w.GetPendingVerifications)
	router.GET("/docuvault/verify-cid", w.VerifyCid)
	router.GET("/docuvault/holders/:address/documents", w.GetDocumentsByHolder)
	router.POST("/docuvault/issuers", w.RegisterIssuer)
	router.GET("/docuvault/issuers/:address", w.GetIssuer)
	router.GET("/docuvault/issuers/:address/documents", w.GetDocumentsByIssuer)
	router.PUT("/docuvault/issuers/:address", w.SetIssuerActive)
	router.DELETE("/docuvault/issuers/:address", w.DeactivateIssuer)
	router.GET("/docuvault/admins/:address", w.IsAdmin)
	router.POST("/docuvault/admins", w.AddAdmin)
	router.DELETE("/docuvault/admins/:address", w.RemoveAdmin)
	router.GET("/docuvault/pause", w.Paused)
	router.POST("/docuvault/pause", w.Pause)
	router.DELETE("/docuvault/pause", w.Unpause)

	router.POST("/auth/dids", w.RegisterDid)
	router.GET("/auth/dids/:did", w.GetDidDocument)
	router.GET("/auth/dids/:did/controller", w.ResolveDid)
	router.GET("/auth/dids/:did/active", w.IsDidActive)
	router.PUT("/auth/dids/:did/active", w.ReactivateDid)
	router.DELETE("/auth/dids/:did/active", w.DeactivateDid)
	router.GET("/auth/dids/:did/roles", w.GetUserRoles)
	router.POST("/auth/dids/:did/roles", w.GrantDidRole)
	router.GET("/auth/dids/:did/roles/:role", w.HasDidRole)
	router.DELETE("/auth/dids/:did/roles/:role", w.RevokeDidRole)
	router.POST("/auth/dids/:did/credentials", w.IssueCredential)
	router.DELETE("/auth/dids/:did/credentials/:credentialType/:credentialId", w.RevokeCredential)
	router.GET("/auth/accounts/:address/did", w.GetDidFromAddress)
	router.GET("/auth/accounts/:address/roles", w.GetUserRolesByAddress)
	router.GET("/auth/accounts/:address/roles/:role", w.HasRole)
	router.GET("/auth/caller/did", w.GetCallerDid)
	router.GET("/auth/roles/:role/requirement", w.GetRoleRequirement)
	router.PUT("/auth/roles/:role/requirement", w.SetRoleRequirement)
	router.GET("/auth/trusted-issuers/:credentialType/:address", w.IsTrustedIssuer)
	router.PUT("/auth/trusted-issuers/:credentialType/:address", w.SetTrustedIssuer)
	router.POST("/auth/authenticate", w.Authenticate)
	router.POST("/auth/credentials/verify", w.VerifyCredentialForAction)
	router.POST("/auth/roles/check", w.HasRequiredRolesAndCredentials)

	router.GET("/verifier/trusted-issuers/:credentialType/:address", w.IsIssuerTrusted)
	router.PUT("/verifier/trusted-issuers/:credentialType/:address", w.SetIssuerTrustStatus)
	router.POST("/verifier/credentials/verify", w.VerifyCredential)

	router.POST("/issuer/issuers", w.AddCredentialIssuer)
	router.POST("/issuer/documents", w.IssueDocument)
	router.GET("/issuer/documents/:hash", w.GetIssuedDocument)
	router.DELETE("/issuer/documents/:hash", w.RevokeIssuedDocument)
}
