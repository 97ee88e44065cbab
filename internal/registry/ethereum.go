package registry

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"blocktrust/internal/platform/config"
	dErrors "blocktrust/pkg/domain-errors"
)

const (
	// cancelGasLimit covers a state-flipping call plus event emission.
	cancelGasLimit = 200_000
	mintGasLimit   = 500_000
	proofGasLimit  = 300_000

	receiptPollInterval = 2 * time.Second
)

// Ethereum talks to the identity registry contract over JSON-RPC. Calls are
// ABI-encoded by hand; the contract surface is four methods and does not
// justify generated bindings.
type Ethereum struct {
	client      *ethclient.Client
	contract    common.Address
	chainID     *big.Int
	operatorKey *ecdsa.PrivateKey
	callTimeout time.Duration
}

// NewEthereum dials the RPC node and prepares the operator signer.
func NewEthereum(cfg config.RegistryConfig) (*Ethereum, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid registry contract address")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorKey, "0x"))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid registry operator key")
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeChainUnavailable, "dial registry RPC")
	}

	return &Ethereum{
		client:      client,
		contract:    common.HexToAddress(cfg.ContractAddress),
		chainID:     big.NewInt(cfg.ChainID),
		operatorKey: key,
		callTimeout: cfg.CallTimeout,
	}, nil
}

// Close releases the RPC connection.
func (e *Ethereum) Close() { e.client.Close() }

func (e *Ethereum) IsActive(ctx context.Context, ownerAddress string) (bool, error) {
	if !common.IsHexAddress(ownerAddress) {
		return false, dErrors.New(dErrors.CodeInvalidInput, "invalid owner address")
	}
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	data := append(selector("isActive(address)"), padAddress(ownerAddress)...)
	out, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &e.contract, Data: data}, nil)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeChainUnavailable, "isActive call failed")
	}
	return len(out) == 32 && out[31] == 1, nil
}

func (e *Ethereum) Cancel(ctx context.Context, ownerAddress, identityID string) (string, error) {
	idNum, err := parseIdentityID(identityID)
	if err != nil {
		return "", err
	}

	data := append(selector("cancel(address,uint256)"), padAddress(ownerAddress)...)
	data = append(data, padUint(idNum)...)

	return e.sendTransaction(ctx, data, cancelGasLimit)
}

func (e *Ethereum) Mint(ctx context.Context, ownerAddress string, metadata []byte, previousID string) (string, string, error) {
	prevNum := big.NewInt(0)
	if previousID != "" {
		var err error
		prevNum, err = parseIdentityID(previousID)
		if err != nil {
			return "", "", err
		}
	}

	// mint(address,bytes,uint256): dynamic bytes go after the 3-word head.
	data := selector("mint(address,bytes,uint256)")
	data = append(data, padAddress(ownerAddress)...)
	data = append(data, padUint(big.NewInt(3*32))...)
	data = append(data, padUint(prevNum)...)
	data = append(data, padBytes(metadata)...)

	txRef, err := e.sendTransaction(ctx, data, mintGasLimit)
	if err != nil {
		return "", "", err
	}

	identityID, err := e.identityOf(ctx, ownerAddress)
	if err != nil {
		return "", txRef, err
	}
	return identityID, txRef, nil
}

func (e *Ethereum) RegisterProof(ctx context.Context, docHash [32]byte, proofURL string) (string, error) {
	// registerProof(bytes32,string)
	data := selector("registerProof(bytes32,string)")
	data = append(data, docHash[:]...)
	data = append(data, padUint(big.NewInt(2*32))...)
	data = append(data, padBytes([]byte(proofURL))...)

	return e.sendTransaction(ctx, data, proofGasLimit)
}

// identityOf reads the current identity id for an owner.
func (e *Ethereum) identityOf(ctx context.Context, ownerAddress string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	data := append(selector("identityOf(address)"), padAddress(ownerAddress)...)
	out, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &e.contract, Data: data}, nil)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeChainUnavailable, "identityOf call failed")
	}
	if len(out) != 32 {
		return "", dErrors.New(dErrors.CodeChainUnavailable, "identityOf returned malformed data")
	}
	return new(big.Int).SetBytes(out).String(), nil
}

// sendTransaction signs call data with the operator key, submits it, and
// waits for the receipt within the call timeout.
func (e *Ethereum) sendTransaction(ctx context.Context, data []byte, gasLimit uint64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	operator := crypto.PubkeyToAddress(e.operatorKey.PublicKey)

	nonce, err := e.client.PendingNonceAt(ctx, operator)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeChainUnavailable, "fetch nonce")
	}
	gasPrice, err := e.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeChainUnavailable, "suggest gas price")
	}

	tx := types.NewTransaction(nonce, e.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(e.chainID), e.operatorKey)
	if err != nil {
		return "", fmt.Errorf("sign registry transaction: %w", err)
	}

	if err := e.client.SendTransaction(ctx, signed); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeChainUnavailable, "send registry transaction")
	}

	if err := e.waitMined(ctx, signed.Hash()); err != nil {
		return signed.Hash().Hex(), err
	}
	return signed.Hash().Hex(), nil
}

func (e *Ethereum) waitMined(ctx context.Context, txHash common.Hash) error {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := e.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return dErrors.New(dErrors.CodeChainUnavailable, "registry transaction reverted")
			}
			return nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return dErrors.Wrap(err, dErrors.CodeChainUnavailable, "fetch receipt")
		}

		select {
		case <-ctx.Done():
			return dErrors.Wrap(ctx.Err(), dErrors.CodeChainUnavailable, "registry transaction not mined in time")
		case <-ticker.C:
		}
	}
}

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

func padAddress(address string) []byte {
	return common.LeftPadBytes(common.HexToAddress(address).Bytes(), 32)
}

func padUint(n *big.Int) []byte {
	return common.LeftPadBytes(n.Bytes(), 32)
}

// padBytes encodes a dynamic bytes value: length word then right-padded data.
func padBytes(b []byte) []byte {
	out := padUint(big.NewInt(int64(len(b))))
	padded := len(b)
	if rem := len(b) % 32; rem != 0 {
		padded += 32 - rem
	}
	return append(out, common.RightPadBytes(b, padded)...)
}

func parseIdentityID(identityID string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(identityID, 10)
	if !ok || n.Sign() < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid identity id")
	}
	return n, nil
}
