package identity

import (
	"encoding/json"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/pkg/errors"
	"github.com/thedevsaddam/gojsonq/v2"
)

const didDocumentTemplate = `{
  "@context": "https://www.w3.org/ns/did/v1",
  "id": "{{{did}}}",
  "controller": "{{{did}}}",
  "verificationMethod": [
    {
      "id": "{{{did}}}#controller",
      "type": "EcdsaSecp256k1RecoveryMethod2020",
      "controller": "{{{did}}}",
      "blockchainAccountId": "eip155:1:{{{address}}}"
    }
  ],
  "authentication": [
    "{{{did}}}#controller"
  ]
}`

// DefaultDocument renders the DID document used when a DID is registered without one.
func DefaultDocument(did string, controller common.Address) (string, error) {
	res, err := mustache.Render(didDocumentTemplate, map[string]interface{}{
		"did":     did,
		"address": controller.Hex(),
	})
	if err != nil {
		return "", errors.Wrap(err, "could not render DID document")
	}
	return res, nil
}

// checkDocument makes sure document is JSON describing did.
func checkDocument(did, document string) error {
	if !json.Valid([]byte(document)) {
		return ErrInvalidDocument
	}
	jq := gojsonq.New().FromString(document)
	id, ok := jq.Find("id").(string)
	if jq.Error() != nil || !ok || id != did {
		return ErrInvalidDocument
	}
	return nil
}

// checkPublicKey accepts opaque key encodings; JSON keys must be valid JWKs.
func checkPublicKey(publicKey string) error {
	if !strings.HasPrefix(strings.TrimSpace(publicKey), "{") {
		return nil
	}
	if _, err := jwk.ParseString(publicKey); err != nil {
		return errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return nil
}
