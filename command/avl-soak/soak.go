// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// summary of a completed soak
type result struct {
	Rounds  int
	Inserts int
	Deletes int
	Count   int
	Height  int
	Stats   avl.Statistics
}

type soak struct {
	log       *logger.L
	config    *Configuration
	limiter   *rate.Limiter
	random    *rand.Rand
	tree      *avl.Tree[int]
	reference map[int]int
}

func newSoak(config *Configuration, log *logger.L) *soak {
	limit := rate.Inf
	if config.Rate > 0 {
		limit = rate.Limit(config.Rate)
	}
	return &soak{
		log:       log,
		config:    config,
		limiter:   rate.NewLimiter(limit, config.KeysPerRound),
		random:    rand.New(rand.NewSource(config.Seed)),
		tree:      avl.New[int](),
		reference: make(map[int]int),
	}
}

// runSoak - apply random rounds of inserts and deletes, verifying the
// tree against a map after every round
func runSoak(ctx context.Context, config *Configuration, log *logger.L) (*result, error) {
	s := newSoak(config, log)
	r := &result{}

	log.Infof("start: rounds: %d  keys/round: %d  range: %d  delete: %.2f  seed: %d",
		config.Rounds, config.KeysPerRound, config.KeyRange, config.DeleteRatio, config.Seed)

	for round := 1; round <= config.Rounds; round += 1 {
		inserts, deletes, err := s.round(ctx, round)
		r.Inserts += inserts
		r.Deletes += deletes
		if nil != err {
			log.Errorf("round: %d  error: %s", round, err)
			return r, err
		}

		if err := s.verify(); nil != err {
			log.Errorf("round: %d  verify error: %s", round, err)
			return r, errors.Wrapf(err, "round: %d", round)
		}
		r.Rounds = round

		log.Debugf("round: %d  count: %d  height: %d", round, s.tree.Count(), s.tree.Height())
	}

	r.Count = s.tree.Count()
	r.Height = s.tree.Height()
	r.Stats = s.tree.Stats()

	log.Infof("finished: rounds: %d  count: %d  height: %d  rotations: %d",
		r.Rounds, r.Count, r.Height, r.Stats.Rotations())
	return r, nil
}

func (s *soak) round(ctx context.Context, round int) (int, int, error) {
	inserts := 0
	deletes := 0
	for i := 0; i < s.config.KeysPerRound; i += 1 {
		if err := s.limiter.Wait(ctx); nil != err {
			return inserts, deletes, err
		}

		key := s.random.Intn(s.config.KeyRange)

		if s.random.Float64() < s.config.DeleteRatio {
			expected, present := s.reference[key]
			value, removed := s.tree.Delete(key)
			if removed != present || value != expected {
				return inserts, deletes, errors.Wrapf(fault.ErrMembershipMismatch, "delete key: %d", key)
			}
			delete(s.reference, key)
			deletes += 1
			continue
		}

		value := round*s.config.KeysPerRound + i
		_, present := s.reference[key]
		added := s.tree.Insert(key, value)
		if added == present {
			return inserts, deletes, errors.Wrapf(fault.ErrMembershipMismatch, "insert key: %d", key)
		}
		s.reference[key] = value
		inserts += 1
	}
	return inserts, deletes, nil
}

// full structural check, then every reference key must be found
// with its latest value
func (s *soak) verify() error {
	if err := s.tree.Check(); nil != err {
		return err
	}

	if s.tree.Count() != len(s.reference) {
		return fault.ErrCountMismatch
	}
	for key, expected := range s.reference {
		value, ok := s.tree.Get(key)
		if !ok || value != expected {
			return errors.Wrapf(fault.ErrMembershipMismatch, "key: %d", key)
		}
	}

	if float64(s.tree.Height()) > heightBound(s.tree.Count()) {
		return fault.ErrHeightBoundExceeded
	}
	return nil
}

// worst case AVL height for n nodes
func heightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}
