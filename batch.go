// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
)

// A Job drives a chip instance of its own, like a test script would.
//
type Job func(c *Chip) error

type indexedJob struct {
	n   int
	job Job
}

// RunBatch compiles cs once, then runs every job against a new instance of the
// chip. Jobs run concurrently on the number of workers set with the Workers
// option. Chips do not share any state, so jobs need no synchronization unless
// they share state of their own.
//
// RunBatch stops at the first failing job and returns its error.
//
func (b *Builder) RunBatch(cs *ChipSpec, jobs ...Job) error {
	ps, err := b.Compile(cs)
	if err != nil {
		return err
	}

	var t tomb.Tomb
	queue := make(chan indexedJob)
	worker := func() error {
		for {
			select {
			case j, ok := <-queue:
				if !ok {
					return nil
				}
				c, err := b.instantiate(ps)
				if err != nil {
					return err
				}
				if err = j.job(c); err != nil {
					return errors.Wrapf(err, "job %d", j.n)
				}
			case <-t.Dying():
				return tomb.ErrDying
			}
		}
	}
	n := b.workers
	if n > len(jobs) {
		n = len(jobs)
	}
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		t.Go(worker)
	}

feed:
	for i, j := range jobs {
		select {
		case queue <- indexedJob{i, j}:
		case <-t.Dying():
			break feed
		}
	}
	close(queue)
	return t.Wait()
}
