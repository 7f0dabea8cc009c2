package command

import (
	"context"
	"fmt"
	"strconv"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/link"
	"github.com/lojhan/svurl/internal/reply"
	"github.com/lojhan/svurl/internal/store"
)

// AddCommand: ADD target check url mode. An empty check skips the cross-set lookup.
func AddCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 4 {
			return wrongArgs("add")
		}

		res, err := s.InsertDeduped(ctx, args[0], args[1], args[2], link.Mode(args[3]))
		if err != nil {
			return reply.ErrorValue(err)
		}
		return reply.StatusValue(res.String())
	}
}

// PopCommand: POP source dest
func PopCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 2 {
			return wrongArgs("pop")
		}

		sel, err := s.PopLast(ctx, args[0], args[1])
		if err != nil {
			return reply.ErrorValue(err)
		}
		return selectionValue(sel)
	}
}

// RandomCommand: RANDOM source dest remove
func RandomCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 3 {
			return wrongArgs("random")
		}

		remove, err := strconv.ParseBool(args[2])
		if err != nil {
			return reply.ErrorValue(svurlerrors.InvalidArgument("remove must be a boolean").WithContext("value", args[2]))
		}

		sel, err := s.SelectRandom(ctx, args[0], args[1], remove)
		if err != nil {
			return reply.ErrorValue(err)
		}
		return selectionValue(sel)
	}
}

// IndexCommand: INDEX source dest index remove
func IndexCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 4 {
			return wrongArgs("index")
		}

		index, err := strconv.Atoi(args[2])
		if err != nil {
			return reply.ErrorValue(svurlerrors.InvalidArgument("index must be an integer").WithContext("value", args[2]))
		}
		remove, err := strconv.ParseBool(args[3])
		if err != nil {
			return reply.ErrorValue(svurlerrors.InvalidArgument("remove must be a boolean").WithContext("value", args[3]))
		}

		sel, err := s.SelectByIndex(ctx, args[0], args[1], index, remove)
		if err != nil {
			return reply.ErrorValue(err)
		}
		return selectionValue(sel)
	}
}

// MergeCommand: MERGE leftA rightA leftB rightB
func MergeCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 4 {
			return wrongArgs("merge")
		}

		res, err := s.Merge(ctx, args[0], args[1], args[2], args[3])
		if err != nil {
			return reply.ErrorValue(err)
		}
		return reply.StatusValue(fmt.Sprintf("%s now holds %d URLs, %s holds %d", args[0], res.Kept, args[2], res.Reconciled))
	}
}

// UndoCommand: UNDO source dest
func UndoCommand(s *store.Store) Handler {
	return func(ctx context.Context, args []string) reply.Value {
		if len(args) != 2 {
			return wrongArgs("undo")
		}

		if err := s.Undo(ctx, args[0], args[1]); err != nil {
			return reply.ErrorValue(err)
		}
		return reply.StatusValue(fmt.Sprintf("restored %s and %s", args[0], args[1]))
	}
}

func selectionValue(sel store.Selection) reply.Value {
	status := "selected " + sel.Value
	if sel.Moved {
		status = fmt.Sprintf("moved %s from %s to %s", sel.Value, sel.Source, sel.Dest)
	}

	values := []reply.Value{reply.StatusValue(status)}
	if sel.OpenErr != nil {
		values = append(values, reply.ErrorValue(sel.OpenErr))
	}
	return reply.ListValue(values...)
}
