package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/lucasveras/faturahub/internal/common"
)

// UnaryRequestID stamps every call with a request id and logs the
// outcome. The id rides the context for handlers that want it.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		reqID := uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod, "request_id", reqID,
				"duration", time.Since(start), "error", err)
			return resp, err
		}
		logger.Info("rpc ok",
			"method", info.FullMethod, "request_id", reqID,
			"duration", time.Since(start))
		return resp, nil
	}
}
