package cluster

import (
	"context"
	"errors"
	"net"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNoHealthyNodes is returned when every configured node is out of rotation
// and a recovery sweep brought none of them back.
var ErrNoHealthyNodes = errors.New("no healthy nodes available")

// IsConnectivityError classifies an error as transport-level. Only these
// failures flip a node's health flag; database/application errors pass
// through untouched so a bad statement never evicts a healthy node.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
			return true
		case codes.Unknown:
			// Unclassified transport failures usually carry connection-related
			// text; anything else is treated as an application error.
			return hasConnectivityText(st.Message())
		}
		return false
	}
	return hasConnectivityText(err.Error())
}

func hasConnectivityText(msg string) bool {
	msg = strings.ToLower(msg)
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"broken pipe",
		"no such host",
		"unreachable",
		"transport",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
