package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const erc20JSON = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

const tokenMessengerJSON = `[
	{"type":"function","name":"depositForBurn","stateMutability":"nonpayable","inputs":[
		{"name":"amount","type":"uint256"},
		{"name":"destinationDomain","type":"uint32"},
		{"name":"mintRecipient","type":"bytes32"},
		{"name":"burnToken","type":"address"},
		{"name":"destinationCaller","type":"bytes32"},
		{"name":"maxFee","type":"uint256"},
		{"name":"minFinalityThreshold","type":"uint32"}
	],"outputs":[]}
]`

const messageTransmitterJSON = `[
	{"type":"function","name":"receiveMessage","stateMutability":"nonpayable","inputs":[
		{"name":"message","type":"bytes"},
		{"name":"attestation","type":"bytes"}
	],"outputs":[{"name":"success","type":"bool"}]},
	{"type":"event","name":"MessageSent","anonymous":false,"inputs":[{"name":"message","type":"bytes","indexed":false}]}
]`

const dexRouterJSON = `[
	{"type":"function","name":"swapExactTokensForTokens","stateMutability":"nonpayable","inputs":[
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[{"name":"amounts","type":"uint256[]"}]}
]`

var (
	erc20ABI              = mustParseABI(erc20JSON)
	tokenMessengerABI     = mustParseABI(tokenMessengerJSON)
	messageTransmitterABI = mustParseABI(messageTransmitterJSON)
	dexRouterABI          = mustParseABI(dexRouterJSON)

	messageSentEventSignature = gethcrypto.Keccak256Hash([]byte("MessageSent(bytes)"))
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

// AddressToBytes32 left-pads an address to the 32-byte recipient form used by CCTP
func AddressToBytes32(addr common.Address) [32]byte {
	var out [32]byte
	copy(out[12:], addr.Bytes())
	return out
}
