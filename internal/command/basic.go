package command

import (
	"context"
	"fmt"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/link"
	"github.com/lojhan/svurl/internal/reply"
	"github.com/lojhan/svurl/internal/store"
)

// SetsCommand lists every configured set with its path and size.
func SetsCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 0 {
			return wrongArgs("sets")
		}

		views, err := s.Sets(ctx)
		if err != nil {
			return reply.ErrorValue(err)
		}

		values := make([]reply.Value, 0, len(views))
		for _, v := range views {
			values = append(values, reply.LineValue(fmt.Sprintf("%s\t%s\t%d", v.Name, v.Path, len(v.Members))))
		}
		return reply.ListValue(values...)
	}
}

// ShowCommand lists a set's members with their 1-based positions.
func ShowCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 1 {
			return wrongArgs("show")
		}

		view, err := s.Find(ctx, args[0])
		if err != nil {
			return reply.ErrorValue(err)
		}
		return reply.NumberedListValue(view.Members)
	}
}

func SaveCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 0 {
			return wrongArgs("save")
		}

		if err := s.SaveAll(ctx); err != nil {
			return reply.ErrorValue(err)
		}
		return reply.OKValue()
	}
}

// ParseCommand shows how a URL would be stored in each mode.
func ParseCommand(_ context.Context, args []string) reply.Value {
	if len(args) != 1 {
		return wrongArgs("parse")
	}

	c, err := link.Parse(args[0])
	if err != nil {
		return reply.ErrorValue(svurlerrors.InvalidURL(args[0], err))
	}
	return reply.ListValue(
		reply.LineValue("origin\t"+c.Origin()),
		reply.LineValue("full\t"+c.FullPath()),
	)
}

// Register wires every command into r.
func Register(r *Registry, s *store.Store) {
	r.RegisterCommand("ADD", AddCommand(s))
	r.RegisterCommand("POP", PopCommand(s))
	r.RegisterCommand("RANDOM", RandomCommand(s))
	r.RegisterCommand("INDEX", IndexCommand(s))
	r.RegisterCommand("MERGE", MergeCommand(s))
	r.RegisterCommand("UNDO", UndoCommand(s))
	r.RegisterCommand("SETS", SetsCommand(s))
	r.RegisterCommand("SHOW", ShowCommand(s))
	r.RegisterCommand("SAVE", SaveCommand(s))
	r.RegisterCommand("PARSE", ParseCommand)
}
