package domain

import (
	"fmt"
	"strconv"
	"strings"

	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

// DefaultPathString is the BIP44 path of the first external Bitcoin address.
const DefaultPathString = "m/44'/0'/0'/0/0"

// PathSegment is one derivation step. Index includes HardenedKeyStart for
// hardened segments.
type PathSegment struct {
	Index    uint32
	Hardened bool
}

func (s PathSegment) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index-HardenedKeyStart), 10) + "'"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// DerivationPath is an ordered list of segments below the master key.
type DerivationPath []PathSegment

// DefaultPath is m/44'/0'/0'/0/0.
var DefaultPath = DerivationPath{
	{Index: HardenedKeyStart + 44, Hardened: true},
	{Index: HardenedKeyStart + 0, Hardened: true},
	{Index: HardenedKeyStart + 0, Hardened: true},
	{Index: 0, Hardened: false},
	{Index: 0, Hardened: false},
}

func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Indices returns the encoded index of every segment.
func (p DerivationPath) Indices() []uint32 {
	out := make([]uint32, len(p))
	for i, s := range p {
		out[i] = s.Index
	}
	return out
}

// ParseDerivationPath accepts "m/44'/0'/0'/0/0" or "44'/0'/0'/0/0".
// A trailing ', h or H marks a hardened segment.
func ParseDerivationPath(path string) (DerivationPath, error) {
	p := strings.TrimSpace(path)
	if strings.HasPrefix(p, "m/") || strings.HasPrefix(p, "M/") {
		p = p[2:]
	}
	if p == "" {
		return nil, pathError("empty derivation path")
	}

	parts := strings.Split(p, "/")
	out := make(DerivationPath, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		hardened := false
		if n := len(part); n > 0 && (part[n-1] == '\'' || part[n-1] == 'h' || part[n-1] == 'H') {
			hardened = true
			part = part[:n-1]
		}
		if part == "" {
			return nil, pathError("invalid path segment")
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, pathError("invalid derivation index %q", part)
		}
		if v >= HardenedKeyStart {
			return nil, pathError("index %d out of range", v)
		}
		idx := uint32(v)
		if hardened {
			idx += HardenedKeyStart
		}
		out = append(out, PathSegment{Index: idx, Hardened: hardened})
	}
	return out, nil
}

func pathError(format string, args ...any) error {
	return wrapErrors.WrapWithCode(wrapErrors.CodeInvalidPath, "hd.parse_path",
		fmt.Errorf("%w: %s", ErrInvalidDerivationPath, fmt.Sprintf(format, args...)))
}
