package menu

import (
	"context"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/loop"
)

// AsyncFunc computes contributions off the loop goroutine. It owns the
// request until it returns.
type AsyncFunc func(ctx context.Context, req *Request) error

type collection struct {
	m       *Manager
	req     *Request
	path    []*dom.Element
	done    func([]Widget, error)
	timer   loop.Timer
	settled bool
}

// RequestContributions collects widgets for origin and reports them to done
// exactly once, on the loop goroutine. Synchronous contributors run before
// it returns unless an asynchronous one suspends the walk first.
func (m *Manager) RequestContributions(origin *dom.Element, done func([]Widget, error)) {
	if origin == nil {
		origin = m.doc.Body
	}
	c := &collection{
		m:    m,
		req:  newRequest(origin),
		path: dom.ComposedPath(origin),
		done: done,
	}
	events.Collect.Start(c.req.id, origin.String(), len(c.path))
	c.timer = m.loop.AfterFunc(CollectTimeout, c.expire)
	c.walk(0)
}

func (c *collection) walk(from int) {
	for i := from; i < len(c.path); i++ {
		node := c.path[i]
		ev := newMenuEvent(c.req, c.path[from])
		node.Deliver(ev)
		if len(c.req.async) > 0 {
			work := c.req.async
			c.req.async = nil
			c.suspend(node, i, work)
			return
		}
		if ev.PropagationStopped() {
			events.Collect.Swallowed(c.req.id, node.String())
			return
		}
	}
	c.resolve()
}

// suspend runs the async work of node in registration order, then resumes
// the walk at the node's parent.
func (c *collection) suspend(node *dom.Element, index int, work []AsyncFunc) {
	events.Collect.Async(c.req.id, node.String())
	ctx := c.m.ctx
	go func() {
		var errs []error
		for _, fn := range work {
			if err := fn(ctx, c.req); err != nil {
				errs = append(errs, err)
			}
		}
		c.m.loop.Post(func() {
			if c.settled {
				events.Collect.Dropped(c.req.id, node.String())
				return
			}
			for _, err := range errs {
				events.Collect.AsyncError(c.req.id, node.String(), err)
			}
			c.walk(index + 1)
		})
	}()
}

func (c *collection) resolve() {
	if c.settled {
		return
	}
	c.settled = true
	c.timer.Stop()
	events.Collect.Resolve(c.req.id, len(c.req.Options))
	c.done(c.req.Options, nil)
}

func (c *collection) expire() {
	if c.settled {
		return
	}
	c.settled = true
	events.Collect.Timeout(c.req.id, CollectTimeout)
	c.done(nil, ErrCollectionTimeout)
}

// WrapAsync turns fn into a "menu" listener. The listener stops the event
// at its node and hands fn to the walk, which runs it off the loop and
// continues at the parent once fn returns. Items fn appended are kept even
// when it fails.
func WrapAsync(fn AsyncFunc) dom.Listener {
	return func(ev *dom.Event) {
		req, ok := RequestFrom(ev)
		if !ok {
			return
		}
		ev.StopPropagation()
		req.async = append(req.async, fn)
	}
}

// AddItems registers a contributor appending items to every request that
// passes element.
func AddItems(element *dom.Element, items []Widget) dom.Handle {
	fixed := append([]Widget(nil), items...)
	return AddItemsFunc(element, func() []Widget { return fixed })
}

// AddItemsFunc registers a contributor appending the result of factory,
// called once per request.
func AddItemsFunc(element *dom.Element, factory func() []Widget) dom.Handle {
	return element.AddEventListener(EventMenu, func(ev *dom.Event) {
		req, ok := RequestFrom(ev)
		if !ok {
			return
		}
		req.Append(factory()...)
	})
}

// AddAsync registers fn as an asynchronous contributor on element.
func AddAsync(element *dom.Element, fn AsyncFunc) dom.Handle {
	return element.AddEventListener(EventMenu, WrapAsync(fn))
}
