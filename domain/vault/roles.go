package vault

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultAdminRole is bytes32(0).
var DefaultAdminRole = common.Hash{}

var AdminRole = domain.RoleHash("ADMIN_ROLE")
