package aerosort

// blockMerge merges v[aStart:aStart+aLen) and v[bStart:bStart+bLen) by
// decomposing both runs into roughly sqrt(n)-sized blocks, tagging each
// with a distinct key, and selecting blocks into place by tag order
// instead of moving individual elements. It tries the scrolling (tagged)
// variant first, which needs an internal buffer large enough to give
// every A-block its own tag slot, then falls back to the in-place
// (rotation-based) variant, which always succeeds.
//
// Requires both aLen and bLen to be strictly greater than k.bufferLen.
// The only caller, mergeRegular, only reaches here after mergeExternal
// and k.mergeBasic have both already failed, which means the buffer was
// smaller than the shorter run, so this always holds in practice.
func blockMerge[T any](k *keys[T], v []T, aStart, aLen, bStart, bLen int, less func(a, b T) bool) sorted {
	if scrollingBlockMerge(k, v, aStart, aLen, bStart, bLen, less) == done {
		return done
	}
	return inPlaceBlockMerge(k, v, aStart, aLen, bStart, bLen, less)
}

// mergeContext holds the layout a block-selection pass runs over (s: the
// absolute start of the first full block; tags: the absolute start of the
// tag region; na, nb: the block counts of the A and B sides; epb:
// elements per block) plus two hooks a caller supplies to react to each
// drop: onDrop is told which block type was just dropped, the current
// provenance pid of whatever sits immediately behind the drop cursor, and
// the post-drop remaining B-block count; initMin computes the index of
// the minimum-tagged A-block to compare against once dropped A-blocks
// reach a given count. The two block merge variants below supply
// different onDrop/initMin pairs over the same selection machinery.
type mergeContext[T any] struct {
	v                    []T
	s, tags, na, nb, epb int
	onDrop               func(id blockID, pid *blockID, cntB int, less func(a, b T) bool)
	initMin              func(dropped int) int
}

type mergeState[T any] struct {
	ctx  *mergeContext[T]
	pid  blockID
	i    int
	cntA int
	cntB int
	ai   int
}

// dropOnce selects the next block to place at the current cursor i: an
// A-block if there is no B-block left, or if the minimum-tagged remaining
// A-block does not sort after the next B-block; a B-block otherwise. It
// physically swaps the chosen block into position i, and if it chose an
// A-block, swaps its tag back into the tag region so the tag region keeps
// holding exactly the tags of not-yet-placed A-blocks.
func (st *mergeState[T]) dropOnce(less func(a, b T) bool) blockID {
	v, s, tags, na, epb := st.ctx.v, st.ctx.s, st.ctx.tags, st.ctx.na, st.ctx.epb
	i, cntA, cntB, minA := st.i, st.cntA, st.cntB, st.ai

	bi := i + cntA
	isA := cntB == 0 || (cntA != 0 && !less(v[s+bi*epb], v[s+minA*epb]))

	src := bi
	stepA := 0
	if isA {
		src, stepA = minA, 1
	}

	dst := s + i*epb
	if src != i {
		swapRanges(v, dst, s+src*epb, epb)
	}
	if stepA != 0 {
		swapRanges(v, tags+na-cntA, dst+stepA, stepA)
	}

	st.cntA = cntA - stepA
	st.cntB = cntB + stepA - 1

	id := blockB
	if isA {
		id = blockA
	}
	st.ctx.onDrop(id, &st.pid, st.cntB, less)
	return id
}

// minBlock returns the index in [start, start+count) of the block whose
// tag (the element at its second slot) sorts least, comparing via the
// tag slots at s+i*epb+1.
func minBlock[T any](v []T, s, start, count, epb int, less func(a, b T) bool) int {
	res := start
	for i := start + 1; i < start+count; i++ {
		if less(v[s+i*epb+1], v[s+res*epb+1]) {
			res = i
		}
	}
	return res
}

// mergeOn drives block selection across [rangeStart, rangeEnd), tracking
// the index of the minimum-tagged remaining A-block (ai) across three
// phases: while no B-block has yet been dropped, take it from initMin;
// then, while i < na, recompute it by scanning the blocks in
// [na, i+1+cntA); after that, by scanning the cntA blocks in
// [i+1, i+1+cntA). No phase drops a block at or past rangeEnd. Returns the
// provenance of whatever block sits under the cursor when the range is
// exhausted.
func mergeOn[T any](ctx *mergeContext[T], rangeStart, rangeEnd int, less func(a, b T) bool) blockID {
	st := &mergeState[T]{ctx: ctx, pid: blockA, cntA: ctx.na, cntB: ctx.nb}
	st.i = rangeStart
	st.ai = ctx.initMin(st.i)
	s, na, nb, epb := ctx.s, ctx.na, ctx.nb, ctx.epb

	selectWhile := func(cond func() bool, minFn func() int) {
		for cond() && st.i < rangeEnd && (bool(st.pid) || st.cntA != 0) {
			bi := st.i + st.cntA
			isA := st.dropOnce(less) == blockA
			if isA {
				st.ai = minFn()
			} else if st.ai == st.i {
				st.ai = bi
			}
			st.i++
		}
	}

	selectWhile(func() bool { return nb == st.cntB }, func() int { return ctx.initMin(st.i + 1) })
	selectWhile(func() bool { return st.i < na }, func() int {
		return minBlock(ctx.v, s, na, st.cntA+st.i+1-na, epb, less)
	})
	selectWhile(func() bool { return st.i < rangeEnd }, func() int {
		return minBlock(ctx.v, s, st.i+1, st.cntA, epb, less)
	})

	return st.pid
}

// mergeUpBlock merges the excess region (length *excess, immediately
// after the hole at *s) with the newly dropped block (length epb,
// immediately after the excess region) into the hole, using the
// comparator as-is if the excess is A-provenance (*pid == blockA, so
// ties should favor it) or flipped if it is B-provenance (so the dropped
// A-block wins ties instead, keeping the overall merge stable regardless
// of which side is physically first). The leftover is repositioned with
// scrollLeft rather than copied, and the hole (*s) rewinds to sit just
// before whichever side has leftover.
func mergeUpBlock[T any](v []T, s, excess *int, pid *blockID, epb int, less func(a, b T) bool) {
	aStart := *s + epb
	n := *excess
	bStart := *s + epb + *excess
	m := epb

	var la, lb int
	if *pid == blockA {
		la, lb = localMergeUp(v, aStart, n, bStart, m, *s, less)
	} else {
		la, lb = localMergeUp(v, aStart, n, bStart, m, *s, func(x, y T) bool { return !less(y, x) })
	}

	scrollLeft(v, bStart, la, epb)
	newExcess := la
	if lb > newExcess {
		newExcess = lb
	}
	*excess = newExcess
	*s = bStart - newExcess
	if la == 0 {
		*pid = !*pid
	}
}

// mergeRightBlock is the in-place-variant counterpart of mergeUpBlock: it
// merges the growing prev run with the block immediately following it
// (next) via rotation instead of a buffer, then advances prev to the
// unconsumed tail of the merged pair, whichever side it came from.
func mergeRightBlock[T any](v []T, prevStart, prevLen, nextStart, nextLen int, pid *blockID, less func(a, b T) bool) (int, int) {
	var l, r int
	if *pid == blockA {
		l, r = mergeRight(v, prevStart, prevLen, nextLen, less)
	} else {
		l, r = mergeRight(v, prevStart, prevLen, nextLen, func(x, y T) bool { return !less(y, x) })
	}
	tail := l
	if r > tail {
		tail = r
	}
	if l == 0 {
		*pid = !*pid
	}
	return nextStart + nextLen - tail, tail
}

// scrollingBlockMerge is the tagged block merge variant: it requires the
// internal buffer to be large enough to give every A-block its own tag
// slot (keys.canScrollingBlockMerge), carves out a scrolling hole of size
// epb from the buffer, and streams blocks through it as they're dropped.
func scrollingBlockMerge[T any](k *keys[T], v []T, aStart, aLen, bStart, bLen int, less func(a, b T) bool) sorted {
	if !k.canScrollingBlockMerge(aLen) {
		return fail
	}

	tagsStart := 0
	bufStart := k.bufferStart()
	epb := k.bufferLen

	n, m := aLen, bLen
	na0 := n / epb
	nb := m / epb
	qa := n % epb
	qb := m % epb
	s := aStart + qa
	na := na0 - 1

	for i := 0; i < na; i++ {
		v[tagsStart+i], v[s+i*epb+1] = v[s+i*epb+1], v[tagsStart+i]
	}

	swapRanges(v, s, bufStart, epb)
	scrollLeft(v, s, qa, epb)
	if na != 0 {
		swapRanges(v, bufStart, s+na*epb, epb)
	}

	buf, excess := aStart, qa
	ctx := &mergeContext[T]{
		v: v, s: s, tags: tagsStart, na: na, nb: nb, epb: epb,
		initMin: func(int) int { return na },
	}
	ctx.onDrop = func(id blockID, pid *blockID, cntB int, less func(a, b T) bool) {
		if id == *pid {
			shift := 0
			if *pid == blockB || cntB != 0 {
				shift = excess
			}
			buf = scrollRight(v, buf, shift, epb)
			excess = epb
		} else {
			mergeUpBlock(v, &buf, &excess, pid, epb, less)
		}
	}

	if mergeOn(ctx, 1, na+nb+1, less) == blockB {
		mergeUp(v, v[bufStart:bufStart+epb], buf+epb, (bStart+bLen)-(buf+epb), true, less)
	} else {
		aStart2 := buf + epb
		bStart2 := bStart + bLen - qb
		n2 := bStart2 - aStart2
		m2 := qb

		i, j := 0, 0
		for i != n2 && j != m2 {
			k := buf + i + j
			if less(v[bStart2+j], v[aStart2+i]) {
				v[k], v[bStart2+j] = v[bStart2+j], v[k]
				j++
			} else {
				v[k], v[aStart2+i] = v[aStart2+i], v[k]
				i++
			}
		}

		newBuf := scrollRight(v, buf+i+j, n2-i, epb-j)
		mergeUp(v, v[bufStart:bufStart+epb], newBuf+epb, (bStart+bLen)-(newBuf+epb), true, less)
	}

	return done
}

// inPlaceBlockMerge is the buffer-free block merge variant, used when the
// internal buffer is too small to give every A-block its own tag: blocks
// are still selected in tag order, but dropped in place via rotation
// (mergeRightBlock) instead of through a scrolling buffer hole, so it
// never fails regardless of buffer size.
func inPlaceBlockMerge[T any](k *keys[T], v []T, aStart, aLen, bStart, bLen int, less func(a, b T) bool) sorted {
	tagsStart := 0
	kTotal := k.tagsLen + k.bufferLen
	n, m := aLen, bLen
	epb := (n+m)/kTotal + 1
	na := n / epb
	nb := m / epb
	qa := n % epb
	qb := m % epb
	s := aStart + qa

	k.sortFirst(v, na, less)
	for i := 0; i < na; i++ {
		v[tagsStart+i], v[s+i*epb+1] = v[s+i*epb+1], v[tagsStart+i]
	}

	prevStart, prevLen := aStart, qa
	ctx := &mergeContext[T]{
		v: v, s: s, tags: tagsStart, na: na, nb: nb, epb: epb,
		initMin: func(dropped int) int { return dropped },
	}
	ctx.onDrop = func(id blockID, pid *blockID, _ int, less func(a, b T) bool) {
		nextStart := prevStart + prevLen
		if id == *pid {
			prevStart, prevLen = nextStart, epb
		} else {
			prevStart, prevLen = mergeRightBlock(v, prevStart, prevLen, nextStart, epb, pid, less)
		}
	}

	if mergeOn(ctx, 0, na+nb, less) == blockA {
		mergeLeft(v, aStart, n+m-qb, qb, less)
	}

	return done
}
