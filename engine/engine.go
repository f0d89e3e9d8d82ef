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

package engine

import (
	"errors"
	"fmt"

	"github.com/Modern-Miracle/NGDocuVault-sub001/api"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	pkg2 "github.com/Modern-Miracle/NGDocuVault-sub001/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	engine "github.com/nuts-foundation/nuts-go-core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewDocuVaultEngine() *engine.Engine {
	cl := pkg2.DocuVaultServiceInstance()

	return &engine.Engine{
		Name:      pkg2.ModuleName,
		Cmd:       cmd(),
		Config:    &cl.Config,
		Configure: cl.Configure,
		Start:     cl.Start,
		ConfigKey: "docuvault",
		FlagSet:   flagSet(),
		Shutdown:  cl.Shutdown,
		Routes: func(router engine.EchoRouter) {
			api.RegisterHandlers(router, api.Wrapper{Cl: cl})
		},
	}
}

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("docuvault", pflag.ContinueOnError)

	defs := pkg2.DefaultDocuVaultConfig()
	flags.String(pkg2.ConfigOwner, defs.Owner, "Hex address of the privileged owner that deploys the contracts")
	flags.String(pkg2.ConfigDatadir, defs.Datadir, "Location of the identity registry database")
	flags.String(pkg2.ConfigGenesis, defs.Genesis, "Optional toml file with the initial admins, issuers, DIDs and roles")
	flags.String(pkg2.ConfigMode, defs.Mode, "server or client, when client no events are forwarded")

	return flags
}

func parseHash(value string) (common.Hash, error) {
	b, err := hexutil.Decode(value)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("'%s' is not a bytes32 hex value", value)
	}
	return common.BytesToHash(b), nil
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("'%s' is not an address", value)
	}
	return common.HexToAddress(value), nil
}

func cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docuvault",
		Short: "docuvault commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "generate-id [contentHash] [holder] [cid]",
		Example: "generate-id 0x7465737400000000000000000000000000000000000000000000000000000000 0x000000000000000000000000000000000000000c QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		Short:   "calculates the id of a document",

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("requires a content hash, holder and cid")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			contentHash, err := parseHash(args[0])
			if err != nil {
				return err
			}
			holder, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			cmd.Println(vault.GenerateDocumentID(contentHash, holder, args[2]).Hex())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify-cid [contentHash] [holder] [cid] [documentId]",
		Short: "checks a cid belongs to a document id",

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 {
				return errors.New("requires a content hash, holder, cid and document id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			contentHash, err := parseHash(args[0])
			if err != nil {
				return err
			}
			holder, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			documentID, err := parseHash(args[3])
			if err != nil {
				return err
			}
			cmd.Println(vault.VerifyCid(contentHash, holder, args[2], documentID))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "roles",
		Short: "lists the DID roles with their hash and default credential type",
		Run: func(cmd *cobra.Command, args []string) {
			for _, r := range auth.Roles {
				cmd.Printf("%-14s %s %s\n", r.Name, r.Role.Hex(), r.CredentialType)
			}
		},
	})
	return cmd
}
