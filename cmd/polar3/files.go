package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/polar3/batchfile"
	"github.com/katalvlaran/polar3/smallmat"
)

// compressionFlag registers --compression on fs.
func compressionFlag(fs *pflag.FlagSet, dst *string) {
	fs.StringVar(dst, "compression", "", "payload compression: none, zstd or lz4 (overrides config)")
}

// compression resolves the flag value against the configured default.
func (a *app) compression(flag string) (batchfile.Compression, error) {
	if flag == "" {
		flag = a.cfg.Files.Compression
	}
	return batchfile.ParseCompression(flag)
}

// readBatch loads a batch file and logs its header.
func (a *app) readBatch(path string) ([]float32, error) {
	data, h, err := batchfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("path", path).
		Uint64("blocks", h.Blocks).
		Stringer("compression", h.Compression).
		Uint64("stored_bytes", h.StoredSize).
		Msg("batch read")
	return data, nil
}

// writeBatch stores data at path and logs it.
func (a *app) writeBatch(path string, data []float32, c batchfile.Compression) error {
	if err := batchfile.WriteFile(path, data, c); err != nil {
		return err
	}
	a.log.Debug().Str("path", path).Int("values", len(data)).Stringer("compression", c).Msg("batch written")
	return nil
}

// blockAt returns the k'th 3×3 block of buf.
func blockAt(buf []float32, k int) smallmat.Mat3 {
	return smallmat.Load(buf[k*9:])
}
