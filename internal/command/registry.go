package command

import (
	"context"
	"sort"
	"strings"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/reply"
)

type Handler func(ctx context.Context, args []string) reply.Value

type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

func (r *Registry) RegisterCommand(name string, handler Handler) {
	r.handlers[strings.ToUpper(name)] = handler
}

func (r *Registry) GetHandler(name string) Handler {
	return r.handlers[strings.ToUpper(name)]
}

func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Dispatch(ctx context.Context, name string, args []string) reply.Value {
	handler := r.GetHandler(name)
	if handler == nil {
		return reply.ErrorValue(svurlerrors.InvalidArgument("unknown command").WithContext("command", name))
	}
	return handler(ctx, args)
}

func wrongArgs(name string) reply.Value {
	return reply.ErrorValue(svurlerrors.InvalidArgument("wrong number of arguments").WithContext("command", name))
}
