// Package vfs binds the three parties of the verifiable file index
// into the operations of the index: outsource, deriveQuery, search,
// verify, add and delete.
//
// The owner and the user talk to the cloud through an in-process
// loopback that carries every request and response in its JSON wire
// encoding. The user trusts only the root the owner hands it after
// outsourcing and after each verified update.
package vfs

import (
	"encoding/hex"
	"errors"

	"github.com/fchen-group/dynamic-verifiable-data-access/application"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
	vfshasher "github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/client"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/cloud"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/owner"
)

// ErrParamsMismatch indicates a cloud announcing other public
// parameters than the ones the owner published.
var ErrParamsMismatch = errors.New("[vfs] Cloud and owner parameters differ")

// Protocol runs the index between a data owner, a cloud and a data user.
type Protocol struct {
	hasher     hasher.TreeHasher
	loadFactor float64
	logger     *application.Logger

	owner     *owner.Owner
	cloud     *cloud.Cloud
	transport *application.Loopback
	user      *client.Verifier
}

// New creates a Protocol for an owner keyed with key, outsourcing
// at the given load factor. A nil logger discards everything.
func New(key prf.PrivateKey, loadFactor float64, logger *application.Logger) *Protocol {
	if logger == nil {
		logger = application.NewNopLogger()
	}
	h := vfshasher.New()
	return &Protocol{
		hasher:     h,
		loadFactor: loadFactor,
		logger:     logger,
		owner:      owner.New(key, h),
	}
}

// NewFromConfig creates a Protocol from a loaded config,
// with a logger built from the config's logger settings.
func NewFromConfig(conf *Config) *Protocol {
	return New(conf.Key, conf.LoadFactor, application.NewLogger(conf.Logger))
}

// Outsource builds the index over filenames and hands it to the cloud.
// The owner keeps the root, and the user starts trusting it.
// Outsourcing again replaces the previous index.
func (p *Protocol) Outsource(filenames []string) error {
	previous := p.owner.Verifier
	d, params, err := p.owner.Outsource(filenames, p.loadFactor)
	if err != nil {
		p.logger.Error("Cannot outsource files", "error", err.Error())
		return err
	}
	published := *params
	if err := p.attach(cloud.New(d, &published)); err != nil {
		p.owner.Verifier = previous
		p.logger.Error("Cannot outsource files", "error", err.Error())
		return err
	}

	stats := d.Stats()
	p.logger.Info("Outsourced files",
		"files", stats.Occupied,
		"tree height", params.TreeHeight,
		"leaf size", params.LeafSize())
	p.logger.Debug("Initial root", "root", hex.EncodeToString(p.owner.Root()))
	return nil
}

// attach connects to c and starts trusting the owner's parameters
// and root. The parameters c announces must match the owner's.
// On error the previous cloud stays in place.
func (p *Protocol) attach(c *cloud.Cloud) error {
	transport := application.NewLoopback(c.HandleRequest, p.logger)
	res, err := transport.Do(protocol.ParamsType, &protocol.ParamsRequest{})
	if err != nil {
		return err
	}
	if err := res.Validate(); err != nil {
		return err
	}
	announced, ok := res.CloudResponse.(*protocol.Params)
	if !ok {
		return protocol.ErrMalformedMessage
	}
	params := p.owner.Params()
	if *announced != *params {
		p.logger.Warn("Cloud announces different parameters",
			"tree height", announced.TreeHeight,
			"hasher", announced.HashID)
		return ErrParamsMismatch
	}
	user, err := client.New(params, p.owner.Root())
	if err != nil {
		return err
	}
	p.cloud, p.transport, p.user = c, transport, user
	return nil
}

// OutsourceDirectory outsources the names of the regular files in dir.
func (p *Protocol) OutsourceDirectory(dir string) error {
	names, err := application.ListDirectory(dir)
	if err != nil {
		return err
	}
	return p.Outsource(names)
}

// DeriveQuery returns the token the owner derives for filename.
func (p *Protocol) DeriveQuery(filename string) merkletree.Token {
	return p.owner.DeriveQuery(filename)
}

// Search asks the cloud for the proof of t.
func (p *Protocol) Search(t merkletree.Token) (*merkletree.Proof, error) {
	if p.transport == nil {
		return nil, owner.ErrNotOutsourced
	}
	res, err := p.transport.Do(protocol.SearchType, &protocol.SearchRequest{Token: t})
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	sp, ok := res.CloudResponse.(*protocol.SearchProof)
	if !ok {
		return nil, protocol.ErrMalformedMessage
	}
	return sp.Proof, nil
}

// VerifyProof checks proof as the answer to a search of t against the
// root the user trusts, and returns the protocol.ErrorCode of the
// failing check if any.
func (p *Protocol) VerifyProof(t merkletree.Token, proof *merkletree.Proof) error {
	if p.user == nil {
		return owner.ErrNotOutsourced
	}
	err := p.user.VerifyProof(t, proof)
	if err != nil {
		p.logger.Warn("Rejected proof", "token", t.String(), "check", err.Error())
	}
	return err
}

// Verify reports whether proof is a valid answer to a search of t.
func (p *Protocol) Verify(t merkletree.Token, proof *merkletree.Proof) bool {
	return p.VerifyProof(t, proof) == nil
}

// Lookup derives the token of filename, searches it and verifies the
// proof, returning whether the file exists.
func (p *Protocol) Lookup(filename string) (bool, error) {
	t := p.DeriveQuery(filename)
	proof, err := p.Search(t)
	if err != nil {
		return false, err
	}
	if err := p.VerifyProof(t, proof); err != nil {
		return false, err
	}
	return proof.Existing, nil
}

// Add has the cloud store t. Adding a stored token is a no-op.
// The owner checks the cloud's update, and on success the user
// moves on to the new root.
func (p *Protocol) Add(t merkletree.Token) error {
	return p.update(protocol.AddType, &protocol.AddRequest{Token: t}, t)
}

// Delete has the cloud remove t. Deleting a token that is not
// stored is a no-op.
func (p *Protocol) Delete(t merkletree.Token) error {
	return p.update(protocol.DeleteType, &protocol.DeleteRequest{Token: t}, t)
}

func (p *Protocol) update(reqType int, request interface{}, t merkletree.Token) error {
	if p.transport == nil {
		return owner.ErrNotOutsourced
	}
	res, err := p.transport.Do(reqType, request)
	if err != nil {
		return err
	}
	if err := p.owner.VerifyUpdate(reqType, t, res); err != nil {
		p.logger.Warn("Rejected update",
			"request type", reqType,
			"token", t.String(),
			"error", err.Error())
		return err
	}
	p.user.SetRoot(p.owner.Root())
	p.logger.Debug("Updated index",
		"request type", reqType,
		"result", res.Error.Error(),
		"root", hex.EncodeToString(p.owner.Root()))
	return nil
}

// Root returns the root the owner trusts, or nil before outsourcing.
func (p *Protocol) Root() []byte {
	if !p.owner.Outsourced() {
		return nil
	}
	return p.owner.Root()
}

// Params returns the public parameters of the index,
// or nil before outsourcing.
func (p *Protocol) Params() *protocol.Params {
	if !p.owner.Outsourced() {
		return nil
	}
	return p.owner.Params()
}

// Cloud returns the cloud holding the index, or nil before outsourcing.
func (p *Protocol) Cloud() *cloud.Cloud {
	return p.cloud
}

// Stats returns the occupancy of the cloud's slot table.
func (p *Protocol) Stats() merkletree.Stats {
	if p.cloud == nil {
		return merkletree.Stats{}
	}
	return p.cloud.Dictionary().Stats()
}
