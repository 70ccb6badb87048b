// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a PawCoin
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate PawCoin network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrUnknownNetwork describes a lookup of a network name that is not
	// registered.
	ErrUnknownNetwork = errors.New("unknown network")
)

// Both default networks are constructed, and their genesis blocks verified,
// when the package is initialized.
var (
	mainNetParams = newMainNetParams()
	testNetParams = newTestNetParams()
)

// MainNetParams returns the parameters of the main network.
func MainNetParams() *Params { return mainNetParams }

// TestNetParams returns the parameters of the test network.
func TestNetParams() *Params { return testNetParams }

// Registered networks are keyed by name: the networks share message start
// bytes, so the magic cannot tell them apart.
var (
	registeredNets    = make(map[string]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the address namespaces of a PawCoin network.  This may
// error with ErrDuplicateNet if a network with the same name is already
// registered (either due to a previous Register call, or the network being
// one of the default networks).
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = append([]byte(nil), params.HDPublicKeyID[:]...)
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return append([]byte(nil), pubBytes...), nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(mainNetParams)
	mustRegister(testNetParams)
}

// Registry holds the supported parameter sets and the one that is active.
// The startup routine owns it and selects a network exactly once; afterwards
// Current is safe for concurrent use.
type Registry struct {
	mtx      sync.RWMutex
	log      zerolog.Logger
	networks []*Params
	current  *Params
}

// NewRegistry returns a registry of the default networks with the main
// network active.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		log:      log,
		networks: []*Params{mainNetParams, testNetParams},
		current:  mainNetParams,
	}
}

// Select makes net the active network and returns its parameters.  Selecting
// the active network again is a no-op.  An unsupported network panics: the
// previous selection must never silently stay in effect.
func (r *Registry) Select(net Network) *Params {
	params := r.byNetwork(net)
	if params == nil {
		panic(fmt.Sprintf("unimplemented network %s", net))
	}

	r.mtx.Lock()
	r.current = params
	r.mtx.Unlock()

	magic := params.MessageStart()
	r.log.Info().
		Str("network", params.Name).
		Hex("magic", magic[:]).
		Str("port", params.DefaultPort).
		Str("rpc_port", params.RPCPort).
		Stringer("genesis", params.GenesisHash).
		Msg("Chain parameters selected")

	return params
}

// SelectFromFlags selects the test network when testNet is set and the main
// network otherwise.
func (r *Registry) SelectFromFlags(testNet bool) *Params {
	return r.Select(NetworkFromFlags(testNet))
}

// NetworkFromFlags maps the --testnet switch onto a Network.
func NetworkFromFlags(testNet bool) Network {
	if testNet {
		return TestNet
	}
	return MainNet
}

// ParamsFor returns the default parameter set of net without selecting it.
func ParamsFor(net Network) (*Params, error) {
	for _, params := range []*Params{mainNetParams, testNetParams} {
		if params.Network == net {
			return params, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "network %s", net)
}

// Current returns the active parameter set.
func (r *Registry) Current() *Params {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.current
}

// Lookup returns the parameter set registered under name.
func (r *Registry) Lookup(name string) (*Params, error) {
	for _, params := range r.networks {
		if params.Name == name {
			return params, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "network %q", name)
}

// Networks returns every supported parameter set, main network first.
func (r *Registry) Networks() []*Params {
	return append([]*Params(nil), r.networks...)
}

func (r *Registry) byNetwork(net Network) *Params {
	for _, params := range r.networks {
		if params.Network == net {
			return params
		}
	}
	return nil
}
