package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	errBadChecksum = errors.New("address checksum mismatch")
	errUpperPrefix = errors.New("address prefix must be 0x")
)

// NormalizeAddress validates a 20-byte hex address and returns it with a lowercase 0x prefix.
// Bare hex is accepted; the 0X prefix is not. All-lowercase and all-uppercase bodies are
// accepted as is; mixed case must be a valid EIP-55 checksum.
func NormalizeAddress(address string) (string, error) {
	if strings.HasPrefix(address, "0X") {
		return "", errUpperPrefix
	}
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%q is not a 20-byte hex address", address)
	}
	body := strings.TrimPrefix(address, "0x")
	if body != strings.ToLower(body) && body != strings.ToUpper(body) &&
		common.HexToAddress(body).Hex()[2:] != body {
		return "", errBadChecksum
	}
	return "0x" + body, nil
}

// RecoverSigner returns the address that produced signature over message
// using the personal_sign (EIP-191) prefix.
func RecoverSigner(message, signature string) (common.Address, error) {
	if !strings.HasPrefix(signature, "0x") && !strings.HasPrefix(signature, "0X") {
		signature = "0x" + signature
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	// wallets emit v as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
