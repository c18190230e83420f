// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "golang.org/x/sync/errgroup"

// run calls fcn for every index in [0, n)
//  With more than one worker, indices are split into contiguous chunks that run
//  concurrently; each index is visited by exactly one goroutine. The first error
//  is returned.
func (o *SatProps) run(n int, fcn func(i int) error) error {
	if o.Workers < 2 || n < 2*o.Workers {
		for i := 0; i < n; i++ {
			if err := fcn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	chunk := (n + o.Workers - 1) / o.Workers
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fcn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
