package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/ujwal-s-r/system-design/internal/domain/cryptoalg"
	"github.com/ujwal-s-r/system-design/internal/infrastructure/cryptography/idea"
	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
	"github.com/ujwal-s-r/system-design/internal/pkg/config"
	"github.com/ujwal-s-r/system-design/internal/pkg/logger"
)

// ideaProcessor struct that implements the IDEAProcessor interface
type ideaProcessor struct {
	ciphers *idea.CipherCache
	logger  logger.Logger
	random  io.Reader
}

// NewIDEAProcessor creates an IDEA processor for the given cipher settings.
func NewIDEAProcessor(settings *config.CipherSettings, logger logger.Logger) (cryptoalg.IDEAProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	conv, err := settings.Convention()
	if err != nil {
		return nil, err
	}

	ciphers, err := idea.NewCipherCache(settings.CacheSize, idea.WithMulConvention(conv))
	if err != nil {
		return nil, fmt.Errorf("failed to create IDEA cipher cache: %w", err)
	}

	return &ideaProcessor{
		ciphers: ciphers,
		logger:  logger,
		random:  rand.Reader,
	}, nil
}

// GenerateKey draws a 128-bit key from crypto/rand.
func (p *ideaProcessor) GenerateKey() (bitstring.Vector, error) {
	var key idea.Key
	if _, err := io.ReadFull(p.random, key[:]); err != nil {
		return bitstring.Vector{}, fmt.Errorf("failed to generate IDEA key: %w", err)
	}
	p.logger.Info("Generated IDEA key")
	return key.Vector(), nil
}

func (p *ideaProcessor) Encrypt(block, key bitstring.Vector) (bitstring.Vector, error) {
	c, x, err := p.prepare(block, key)
	if err != nil {
		return bitstring.Vector{}, fmt.Errorf("IDEA encryption failed: %w", err)
	}
	out := c.EncryptBlock(x).Vector()
	p.logger.Info("IDEA encryption succeeded")
	return out, nil
}

func (p *ideaProcessor) Decrypt(block, key bitstring.Vector) (bitstring.Vector, error) {
	c, x, err := p.prepare(block, key)
	if err != nil {
		return bitstring.Vector{}, fmt.Errorf("IDEA decryption failed: %w", err)
	}
	out := c.DecryptBlock(x).Vector()
	p.logger.Info("IDEA decryption succeeded")
	return out, nil
}

// prepare checks the block before the key and fetches the key's cipher.
func (p *ideaProcessor) prepare(block, key bitstring.Vector) (*idea.Cipher, idea.Block, error) {
	x, err := idea.BlockFromVector(block)
	if err != nil {
		return nil, idea.Block{}, err
	}
	k, err := idea.KeyFromVector(key)
	if err != nil {
		return nil, idea.Block{}, err
	}

	c, hit := p.ciphers.Get(k)
	if hit {
		p.logger.Debug("IDEA key schedule served from cache")
	}
	return c, x, nil
}
