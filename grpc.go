package metadata

import (
	"context"
	"sort"
	"strings"

	"google.golang.org/grpc"
	grpcmd "google.golang.org/grpc/metadata"
)

// FromMD converts gRPC metadata into Metadata. gRPC metadata is unordered across keys
// so the keys are added in sorted order; values keep their order. Pseudo-headers such
// as :authority are skipped.
func FromMD(md grpcmd.MD) *Metadata {
	keys := make([]string, 0, len(md))
	for key := range md {
		if strings.HasPrefix(key, ":") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := New()
	for _, key := range keys {
		for _, value := range md[key] {
			m.Set(key, value)
		}
	}
	return m
}

// MD converts the metadata into gRPC metadata. gRPC keys are case-insensitive, so keys
// are lowercased and the values of keys that differ only by case are combined. Nil
// metadata converts to empty gRPC metadata.
func (m *Metadata) MD() grpcmd.MD {
	if m == nil {
		return grpcmd.MD{}
	}

	md := make(grpcmd.MD, len(m.keys))
	for _, key := range m.keys {
		md.Append(key, m.values[key]...)
	}
	return md
}

// NewOutgoingContext creates a new context with the metadata attached as outgoing gRPC
// metadata, replacing any outgoing metadata already in the context.
func NewOutgoingContext(ctx context.Context, m *Metadata) context.Context {
	return grpcmd.NewOutgoingContext(ctx, m.MD())
}

// AppendToOutgoingContext returns a new context with the metadata appended to any
// outgoing gRPC metadata already in the context.
func AppendToOutgoingContext(ctx context.Context, m *Metadata) context.Context {
	if m == nil {
		return ctx
	}

	kv := make([]string, 0, 2*m.Len())
	for _, key := range m.keys {
		for _, value := range m.values[key] {
			kv = append(kv, key, value)
		}
	}
	return grpcmd.AppendToOutgoingContext(ctx, kv...)
}

// FromIncomingContext returns the incoming gRPC metadata of a server context.
func FromIncomingContext(ctx context.Context) (*Metadata, bool) {
	md, ok := grpcmd.FromIncomingContext(ctx)
	if !ok {
		return nil, false
	}
	return FromMD(md), true
}

type contextKey struct{}

// NewContext returns a context that carries the metadata; use FromContext to retrieve
// it in handlers.
func NewContext(ctx context.Context, m *Metadata) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the metadata stored in the context by NewContext or by one of
// the server interceptors.
func FromContext(ctx context.Context) (*Metadata, bool) {
	m, ok := ctx.Value(contextKey{}).(*Metadata)
	return m, ok && m != nil
}

// MustFromContext is like FromContext but returns ErrNoMetadata if the context does
// not carry any metadata.
func MustFromContext(ctx context.Context) (*Metadata, error) {
	if m, ok := FromContext(ctx); ok {
		return m, nil
	}
	return nil, ErrNoMetadata
}

// UnaryClientInterceptor appends the metadata to the outgoing metadata of every unary
// RPC made on the connection, e.g. to attach a ce-source to every request.
func UnaryClientInterceptor(m *Metadata) grpc.UnaryClientInterceptor {
	m = m.Clone()
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(AppendToOutgoingContext(ctx, m), method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor appends the metadata to the outgoing metadata of every stream
// opened on the connection.
func StreamClientInterceptor(m *Metadata) grpc.StreamClientInterceptor {
	m = m.Clone()
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(AppendToOutgoingContext(ctx, m), desc, cc, method, opts...)
	}
}

// UnaryServerInterceptor converts the incoming gRPC metadata of every unary RPC into
// Metadata that handlers can fetch with FromContext. Each call gets its own Metadata.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(incoming(ctx), req)
	}
}

// StreamServerInterceptor converts the incoming gRPC metadata of every stream into
// Metadata that handlers can fetch with FromContext on the stream's context.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, &serverStream{ServerStream: ss, ctx: incoming(ss.Context())})
	}
}

func incoming(ctx context.Context) context.Context {
	m, ok := FromIncomingContext(ctx)
	if !ok {
		m = New()
	}
	return NewContext(ctx, m)
}

type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}
