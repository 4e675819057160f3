package amoskeag

import "math"

// Financial built-ins (§4.5), Excel-compatible, ordinary-annuity
// (type=0) conventions throughout since the spec's fixed arities carry
// no `type`/`fv` parameter. Grounded on the standard TVM identities;
// there is no teacher precedent for this family, so these follow the
// identities directly rather than any example repo: closed forms where
// one exists, a period-by-period loop for amortization, and Newton's
// method for rate and irr.
func init() {
	register("pmt", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, nper, pv, err := threeNumbers("pmt", a, sp)
		if err != nil {
			return Value{}, err
		}
		return Number(pmtOf(rate, nper, pv)), nil
	})
	register("pv", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, nper, pmt, err := threeNumbers("pv", a, sp)
		if err != nil {
			return Value{}, err
		}
		return Number(pvOf(rate, nper, pmt)), nil
	})
	register("fv", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, nper, pmt, err := threeNumbers("fv", a, sp)
		if err != nil {
			return Value{}, err
		}
		return Number(fvOf(rate, nper, pmt)), nil
	})
	register("nper", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, pmt, pv, err := threeNumbers("nper", a, sp)
		if err != nil {
			return Value{}, err
		}
		if rate == 0 {
			if pmt == 0 {
				return Value{}, newDivisionByZero("nper", sp)
			}
			return Number(-pv / pmt), nil
		}
		denom := pv*rate + pmt
		if denom == 0 {
			return Value{}, newDivisionByZero("nper", sp)
		}
		return Number(math.Log(pmt/denom) / math.Log(1+rate)), nil
	})
	register("rate", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		nper, pmt, pv, err := threeNumbers("rate", a, sp)
		if err != nil {
			return Value{}, err
		}
		r, ok := solveRate(nper, pmt, pv)
		if !ok {
			return Value{}, newArgumentError("rate", "failed to converge")
		}
		return Number(r), nil
	})
	register("npv", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, err := wantNumber(a[0], "npv", sp)
		if err != nil {
			return Value{}, err
		}
		flows, err := numericArray(a[1], "npv", sp)
		if err != nil {
			return Value{}, err
		}
		total := 0.0
		for i, cf := range flows {
			total += cf / math.Pow(1+rate, float64(i+1))
		}
		return Number(total), nil
	})
	register("irr", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		flows, err := numericArray(a[0], "irr", sp)
		if err != nil {
			return Value{}, err
		}
		r, ok := solveIRR(flows)
		if !ok {
			return Value{}, newArgumentError("irr", "failed to converge")
		}
		return Number(r), nil
	})
	register("mirr", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		flows, err := numericArray(a[0], "mirr", sp)
		if err != nil {
			return Value{}, err
		}
		financeRate, err := wantNumber(a[1], "mirr", sp)
		if err != nil {
			return Value{}, err
		}
		reinvestRate, err := wantNumber(a[2], "mirr", sp)
		if err != nil {
			return Value{}, err
		}
		n := len(flows) - 1
		if n < 1 {
			return Value{}, newArgumentError("mirr", "requires at least two cash flows")
		}
		var pvNeg, fvPos float64
		for i, cf := range flows {
			if cf < 0 {
				pvNeg += cf / math.Pow(1+financeRate, float64(i))
			} else if cf > 0 {
				fvPos += cf * math.Pow(1+reinvestRate, float64(n-i))
			}
		}
		if pvNeg == 0 {
			return Value{}, newDivisionByZero("mirr", sp)
		}
		return Number(math.Pow(-fvPos/pvNeg, 1/float64(n)) - 1), nil
	})
	register("sln", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		cost, salvage, life, err := threeNumbers("sln", a, sp)
		if err != nil {
			return Value{}, err
		}
		if life == 0 {
			return Value{}, newDivisionByZero("sln", sp)
		}
		return Number((cost - salvage) / life), nil
	})
	register("ddb", []int{4}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		cost, salvage, life, period, err := fourNumbers("ddb", a, sp)
		if err != nil {
			return Value{}, err
		}
		return Number(ddbOf(cost, salvage, life, period, 2)), nil
	})
	register("db", []int{4}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		cost, salvage, life, period, err := fourNumbers("db", a, sp)
		if err != nil {
			return Value{}, err
		}
		return Number(dbOf(cost, salvage, life, period, 12)), nil
	})
	register("ipmt", []int{4}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, per, nper, pv, err := fourNumbers("ipmt", a, sp)
		if err != nil {
			return Value{}, err
		}
		ip, _ := amortize(rate, int(per), int(nper), pv)
		return Number(ip), nil
	})
	register("ppmt", []int{4}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		rate, per, nper, pv, err := fourNumbers("ppmt", a, sp)
		if err != nil {
			return Value{}, err
		}
		_, pp := amortize(rate, int(per), int(nper), pv)
		return Number(pp), nil
	})
	register("cumipmt", []int{5}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return cumulative("cumipmt", a, sp, true)
	})
	register("cumprinc", []int{5}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return cumulative("cumprinc", a, sp, false)
	})
}

func threeNumbers(op string, a []Value, sp Span) (x, y, z float64, err *EvalError) {
	if x, err = wantNumber(a[0], op, sp); err != nil {
		return
	}
	if y, err = wantNumber(a[1], op, sp); err != nil {
		return
	}
	z, err = wantNumber(a[2], op, sp)
	return
}

func fourNumbers(op string, a []Value, sp Span) (w, x, y, z float64, err *EvalError) {
	if w, err = wantNumber(a[0], op, sp); err != nil {
		return
	}
	if x, err = wantNumber(a[1], op, sp); err != nil {
		return
	}
	if y, err = wantNumber(a[2], op, sp); err != nil {
		return
	}
	z, err = wantNumber(a[3], op, sp)
	return
}

func pmtOf(rate, nper, pv float64) float64 {
	if rate == 0 {
		return -pv / nper
	}
	pow := math.Pow(1+rate, nper)
	return -pv * rate * pow / (pow - 1)
}

func pvOf(rate, nper, pmt float64) float64 {
	if rate == 0 {
		return -pmt * nper
	}
	pow := math.Pow(1+rate, nper)
	return -pmt * (pow - 1) / (rate * pow)
}

func fvOf(rate, nper, pmt float64) float64 {
	if rate == 0 {
		return -pmt * nper
	}
	pow := math.Pow(1+rate, nper)
	return -pmt * (pow - 1) / rate
}

// solveRate finds r such that pv*(1+r)^nper + pmt*((1+r)^nper-1)/r == 0,
// via Newton's method from a 10% guess, generalized from the standard
// Excel RATE iteration.
func solveRate(nper, pmt, pv float64) (float64, bool) {
	f := func(r float64) float64 {
		if r == 0 {
			return pv + pmt*nper
		}
		pow := math.Pow(1+r, nper)
		return pv*pow + pmt*(pow-1)/r
	}
	r := 0.1
	const h = 1e-6
	for i := 0; i < 100; i++ {
		fr := f(r)
		if math.Abs(fr) < 1e-10 {
			return r, true
		}
		deriv := (f(r+h) - fr) / h
		if deriv == 0 {
			return 0, false
		}
		next := r - fr/deriv
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		r = next
	}
	return r, math.Abs(f(r)) < 1e-6
}

// solveIRR finds r such that sum(flows[i]/(1+r)^i) == 0.
func solveIRR(flows []float64) (float64, bool) {
	f := func(r float64) float64 {
		total := 0.0
		for i, cf := range flows {
			total += cf / math.Pow(1+r, float64(i))
		}
		return total
	}
	r := 0.1
	const h = 1e-6
	for i := 0; i < 100; i++ {
		fr := f(r)
		if math.Abs(fr) < 1e-10 {
			return r, true
		}
		deriv := (f(r+h) - fr) / h
		if deriv == 0 {
			return 0, false
		}
		next := r - fr/deriv
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return 0, false
		}
		r = next
	}
	return r, math.Abs(f(r)) < 1e-6
}

// ddbOf applies the declining-balance depreciation recurrence through
// the requested period.
func ddbOf(cost, salvage, life, period, factor float64) float64 {
	rate := factor / life
	book := cost
	dep := 0.0
	for p := 1; p <= int(period); p++ {
		dep = book * rate
		if book-dep < salvage {
			dep = book - salvage
		}
		book -= dep
	}
	if dep < 0 {
		return 0
	}
	return dep
}

// dbOf applies the fixed-declining-balance recurrence, rate rounded to
// three decimals per Excel's DB definition.
func dbOf(cost, salvage, life, period, month float64) float64 {
	if cost == 0 {
		return 0
	}
	rate := math.Round((1-math.Pow(salvage/cost, 1/life))*1000) / 1000
	first := cost * rate * month / 12
	if period == 1 {
		return first
	}
	accum := first
	dep := first
	total := int(life) + 1
	for p := 2; p <= int(period) && p <= total; p++ {
		if p == total {
			dep = (cost - accum) * rate * (12 - month) / 12
		} else {
			dep = (cost - accum) * rate
		}
		accum += dep
	}
	return dep
}

// amortize returns the interest and principal components of the `per`
// payment of a level-payment loan, tracking the outstanding balance
// period by period rather than using a closed form.
func amortize(rate float64, per, nper int, pv float64) (interest, principal float64) {
	pmt := pmtOf(rate, float64(nper), pv)
	balance := pv
	for p := 1; p <= per; p++ {
		interest = -balance * rate
		principal = pmt - interest
		balance += principal
	}
	return interest, principal
}

func cumulative(op string, a []Value, sp Span, wantInterest bool) (Value, *EvalError) {
	rate, err := wantNumber(a[0], op, sp)
	if err != nil {
		return Value{}, err
	}
	nper, err := wantInt(a[1], op, sp)
	if err != nil {
		return Value{}, err
	}
	pv, err := wantNumber(a[2], op, sp)
	if err != nil {
		return Value{}, err
	}
	start, err := wantInt(a[3], op, sp)
	if err != nil {
		return Value{}, err
	}
	end, err := wantInt(a[4], op, sp)
	if err != nil {
		return Value{}, err
	}
	if start < 1 || end < start || end > nper {
		return Value{}, newArgumentError(op, "invalid period range [%d, %d] for %d total periods", start, end, nper)
	}
	total := 0.0
	for per := start; per <= end; per++ {
		ip, pp := amortize(rate, per, nper, pv)
		if wantInterest {
			total += ip
		} else {
			total += pp
		}
	}
	return Number(total), nil
}
