package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-meet-bridge/internal/codec"
	"github.com/MKhiriev/go-meet-bridge/internal/config"
	"github.com/MKhiriev/go-meet-bridge/internal/logger"
	"github.com/MKhiriev/go-meet-bridge/internal/service"
	"github.com/MKhiriev/go-meet-bridge/internal/utils"
)

// Runner converts one input payload into one output payload.
type Runner struct {
	service service.BridgeService
	in      codec.Codec
	out     codec.Codec
	logger  *logger.Logger
}

// NewRunner resolves the payload codecs named in cfg.
func NewRunner(svc service.BridgeService, cfg config.Bridge, logger *logger.Logger) (*Runner, error) {
	in, err := codec.ByName(cfg.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("input codec: %w", err)
	}

	out, err := codec.ByName(cfg.OutputFormat)
	if err != nil {
		return nil, fmt.Errorf("output codec: %w", err)
	}

	return newRunner(svc, in, out, logger), nil
}

func newRunner(svc service.BridgeService, in, out codec.Codec, logger *logger.Logger) *Runner {
	return &Runner{
		service: svc,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run reads all of src, converts it and writes the result to dst. Each call
// gets its own request id; the logger carrying it is attached to ctx.
//
// Run returns ctx.Err() as soon as ctx is done, even while src blocks, and
// never writes to dst after that.
func (r *Runner) Run(ctx context.Context, src io.Reader, dst io.Writer) error {
	requestID := utils.NewRequestID()
	log := r.logger.WithStr("request_id", requestID)
	ctx = utils.WithRequestID(log.WithContext(ctx), requestID)

	data, err := readAll(ctx, src)
	if err != nil {
		log.Err(err).Msg(MsgConversionFailed)
		return err
	}

	log.Info().
		Str("from", r.in.Name()).
		Str("to", r.out.Name()).
		Int("bytes", len(data)).
		Msg(MsgConversionStarted)

	converted, err := r.Convert(ctx, data)
	if err != nil {
		log.Err(err).Msg(MsgConversionFailed)
		return err
	}

	if err = ctx.Err(); err != nil {
		log.Err(err).Msg(MsgConversionFailed)
		return err
	}

	if _, err = dst.Write(converted); err != nil {
		log.Err(err).Msg(MsgConversionFailed)
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	log.Info().Int("bytes", len(converted)).Msg(MsgConversionFinished)
	return nil
}

// Convert maps one payload from the input format to the output format,
// passing it through the typed model on the way.
func (r *Runner) Convert(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := codec.DecodeBundle(r.in, data)
	if err != nil {
		return nil, err
	}

	info, err := r.service.DecodeContainerInfo(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("error decoding container info: %w", err)
	}

	encoded, err := r.service.EncodeContainerInfo(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("error encoding container info: %w", err)
	}

	return codec.EncodeBundle(r.out, encoded)
}

type readResult struct {
	data []byte
	err  error
}

// readAll is io.ReadAll that gives up when ctx is done. A read still blocked
// at that point finishes in the background; callers unblock it by closing src.
func readAll(ctx context.Context, src io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(src)
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, res.err)
		}
		return res.data, nil
	}
}
