// SPDX-License-Identifier: MIT

package ct_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoct/ct"
)

func newFactory(t *testing.T, opts ...ct.Option) *ct.Factory {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	f, err := ct.NewFactory(append([]ct.Option{ct.WithLogger(logger)}, opts...)...)
	require.NoError(t, err)

	return f
}

func TestFactoryDefaultProviders(t *testing.T) {
	f := newFactory(t)
	require.Equal(t, []string{"Affine", "Exponential", "Logarithmic"}, f.Classifications())

	p, err := f.GetMathTransformProvider("exponential")
	require.NoError(t, err)
	require.Equal(t, ct.ClassExponential, p.Classification())

	_, err = f.GetMathTransformProvider("Mercator_1SP")
	require.ErrorIs(t, err, ct.ErrNoSuchClassification)
	_, err = f.CreateParameterizedTransform("Mercator_1SP", nil)
	require.ErrorIs(t, err, ct.ErrNoSuchClassification)
}

func TestCreateParameterizedTransformDefaults(t *testing.T) {
	f := newFactory(t)
	exp, err := f.CreateParameterizedTransform("Exponential", nil)
	require.NoError(t, err)
	y, err := exp.(ct.MathTransform1D).Transform1D(2)
	require.NoError(t, err)
	require.Equal(t, 100.0, y)

	log, err := f.CreateParameterizedTransform("Logarithmic", nil)
	require.NoError(t, err)
	y, err = log.(ct.MathTransform1D).Transform1D(1000)
	require.NoError(t, err)
	require.InDelta(t, 3, y, 1e-6)

	aff, err := f.CreateParameterizedTransform("Affine", nil)
	require.NoError(t, err)
	require.True(t, aff.IsIdentity())
	require.Equal(t, 2, aff.DimSource())
}

func TestCreateParameterizedTransformWithValues(t *testing.T) {
	f := newFactory(t)
	p, err := f.GetMathTransformProvider(ct.ClassExponential)
	require.NoError(t, err)
	params := p.Parameters().NewList()
	require.NoError(t, params.Set("base", 2)) // integers are accepted
	require.NoError(t, params.Set("Scale", 0.5))

	tr, err := f.CreateParameterizedTransform(ct.ClassExponential, params)
	require.NoError(t, err)
	y, err := tr.(ct.MathTransform1D).Transform1D(3)
	require.NoError(t, err)
	require.Equal(t, 4.0, y)

	require.ErrorIs(t, params.Set("scale", "big"), ct.ErrParameterType)
	require.ErrorIs(t, params.Set("central_meridian", 0), ct.ErrUnknownParameter)

	bad := p.Parameters().NewList()
	require.NoError(t, bad.Set("base", 1))
	_, err = f.CreateParameterizedTransform(ct.ClassExponential, bad)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)

	// parameters bound to another provider's schema
	_, err = f.CreateParameterizedTransform(ct.ClassLogarithmic, params)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)
}

func TestAffineProviderParameters(t *testing.T) {
	f := newFactory(t)
	p, err := f.GetMathTransformProvider(ct.ClassAffine)
	require.NoError(t, err)

	params := p.Parameters().NewList()
	require.NoError(t, params.SetAll(map[string]any{"elt_0_2": 5.0, "elt_1_2": int64(-1)}))
	tr, err := f.CreateParameterizedTransform(ct.ClassAffine, params)
	require.NoError(t, err)
	x, y, err := tr.(ct.MathTransform2D).Transform2D(1, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, x)
	require.Equal(t, 0.0, y)

	params = p.Parameters().NewList()
	require.NoError(t, params.SetAll(map[string]any{"num_row": 2, "num_col": 2, "elt_0_0": 3}))
	tr, err = p.Create(params)
	require.NoError(t, err)
	require.True(t, tr.Equal(ct.NewLinearTransform1D(3, 0)))

	params = p.Parameters().NewList()
	require.NoError(t, params.Set("elt_5_5", 1))
	_, err = p.Create(params)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)

	params = p.Parameters().NewList()
	require.NoError(t, params.Set("num_row", 2.5))
	_, err = p.Create(params)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)

	// oversized matrices are refused before allocation
	for name, size := range map[string]any{"num_row": 1e6, "num_col": ct.MaxAffineSize + 1} {
		params = p.Parameters().NewList()
		require.NoError(t, params.SetAll(map[string]any{"num_row": 2, "num_col": 2, name: size}))
		_, err = p.Create(params)
		require.ErrorIs(t, err, ct.ErrIllegalArgument, name)
	}
	params = p.Parameters().NewList()
	require.NoError(t, params.SetAll(map[string]any{"num_row": ct.MaxAffineSize, "num_col": ct.MaxAffineSize}))
	big, err := p.Create(params)
	require.NoError(t, err)
	require.True(t, big.IsIdentity())

	for _, name := range []string{"elt_01_1", "elt_+1_1", "elt_1", "elt_a_b", "elt_-1_0"} {
		require.ErrorIs(t, params.Set(name, 1), ct.ErrUnknownParameter, name)
	}
}

func TestParameterList(t *testing.T) {
	desc := &ct.ParameterListDescriptor{
		Name: "Test",
		Params: []ct.ParameterDescriptor{
			{Name: "label", Kind: ct.KindString, Default: "none"},
			{Name: "factor", Kind: ct.KindFloat, Required: true},
		},
	}
	l := desc.NewList()
	s, err := l.Text("label")
	require.NoError(t, err)
	require.Equal(t, "none", s)

	_, err = l.Float("factor")
	require.ErrorIs(t, err, ct.ErrMissingParameter)
	_, err = l.Float("label")
	require.ErrorIs(t, err, ct.ErrParameterType)
	_, err = l.Text("nothing")
	require.ErrorIs(t, err, ct.ErrUnknownParameter)

	require.NoError(t, l.SetAll(map[string]any{"LABEL": "x", "factor": float32(0.5)}))
	require.Equal(t, []string{"factor", "label"}, l.Names())
	v, err := l.Float("factor")
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
	require.Same(t, desc, l.Descriptor())
	require.Equal(t, "string", ct.KindString.String())
}

func TestParameterCoercion(t *testing.T) {
	desc := &ct.ParameterListDescriptor{
		Name: "Coerce",
		Params: []ct.ParameterDescriptor{
			{Name: "factor", Kind: ct.KindFloat},
			{Name: "label", Kind: ct.KindString},
		},
	}
	for _, v := range []any{int8(2), int16(2), uint8(2), uint16(2), int64(2), uint(2), float32(2), "2", "2e0"} {
		l := desc.NewList()
		require.NoError(t, l.Set("factor", v), "%T", v)
		got, err := l.Float("factor")
		require.NoError(t, err)
		require.Equal(t, 2.0, got, "%T", v)
	}

	l := desc.NewList()
	require.NoError(t, l.Set("label", 4326))
	s, err := l.Text("label")
	require.NoError(t, err)
	require.Equal(t, "4326", s)

	for _, v := range []any{nil, true, "two", []float64{2}} {
		require.ErrorIs(t, l.Set("factor", v), ct.ErrParameterType, "%#v", v)
	}
	require.ErrorIs(t, l.Set("label", nil), ct.ErrParameterType)
	require.ErrorIs(t, l.Set("label", []float64{1}), ct.ErrParameterType)

	exp := ct.ExponentialProvider{}.Parameters().NewList()
	require.NoError(t, exp.Set("base", uint8(2)))
	tr, err := ct.ExponentialProvider{}.Create(exp)
	require.NoError(t, err)
	y, err := tr.(ct.MathTransform1D).Transform1D(3)
	require.NoError(t, err)
	require.Equal(t, 8.0, y)
}

type doubleProvider struct{}

func (doubleProvider) Classification() string { return "Double" }

func (doubleProvider) Parameters() *ct.ParameterListDescriptor {
	return &ct.ParameterListDescriptor{Name: "Double"}
}

func (doubleProvider) Create(*ct.ParameterList) (ct.MathTransform, error) {
	return ct.NewLinearTransform1D(2, 0), nil
}

func TestFactoryRegistry(t *testing.T) {
	f := newFactory(t, ct.WithoutDefaultProviders(), ct.WithProvider(doubleProvider{}))
	require.Equal(t, []string{"Double"}, f.Classifications())

	tr, err := f.CreateParameterizedTransform("DOUBLE", nil)
	require.NoError(t, err)
	require.True(t, tr.Equal(ct.NewLinearTransform1D(2, 0)))

	require.ErrorIs(t, f.Register(doubleProvider{}), ct.ErrDuplicateClassification)
	require.ErrorIs(t, f.Register(nil), ct.ErrIllegalArgument)
	require.NoError(t, f.Register(ct.ExponentialProvider{}))
	require.Equal(t, []string{"Double", "Exponential"}, f.Classifications())

	_, err = ct.NewFactory(ct.WithProvider(ct.AffineProvider{}))
	require.ErrorIs(t, err, ct.ErrDuplicateClassification)

	require.Panics(t, func() { ct.WithLogger(nil)(&ct.Options{}) })
	require.Panics(t, func() { ct.WithProvider(nil)(&ct.Options{}) })
}

func TestFactoryLogsConstruction(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	f, err := ct.NewFactory(ct.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 3, "one record per registered provider")

	_, err = f.CreateParameterizedTransform("Exponential", nil)
	require.NoError(t, err)
	e := hook.LastEntry()
	require.Equal(t, logrus.DebugLevel, e.Level)
	require.Equal(t, "Exponential", e.Data["classification"])
	require.Equal(t, 1, e.Data["dim_source"])
	require.Equal(t, 1, e.Data["dim_target"])
}

func TestFactoryCompositionEntryPoints(t *testing.T) {
	f := newFactory(t)
	exp, err := f.CreateParameterizedTransform("Exponential", nil)
	require.NoError(t, err)

	same, err := f.CreatePassThroughTransform(0, exp, 0)
	require.NoError(t, err)
	require.Same(t, exp, same)

	pt, err := f.CreatePassThroughTransform(2, exp, 1)
	require.NoError(t, err)
	sub, outs, err := f.CreateSubTransform(pt, []int{2})
	require.NoError(t, err)
	require.Same(t, exp, sub)
	require.Equal(t, []int{2}, outs)

	aff, err := f.CreateAffineTransform(mustRows(t, [][]float64{{2, 1}, {0, 1}}))
	require.NoError(t, err)
	c, err := f.CreateConcatenatedTransform(exp, aff)
	require.NoError(t, err)
	y, err := c.(ct.MathTransform1D).Transform1D(1)
	require.NoError(t, err)
	require.Equal(t, 21.0, y)

	_, err = f.CreateAffineTransform(nil)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)
	_, err = f.CreateConcatenatedTransform(exp, pt)
	require.ErrorIs(t, err, ct.ErrMismatchedDimension)
	_, err = f.CreatePassThroughTransform(-1, exp, 0)
	require.ErrorIs(t, err, ct.ErrIllegalArgument)
}

// TestFactoryConcurrentUse registers providers while other goroutines look
// them up and build transforms.
func TestFactoryConcurrentUse(t *testing.T) {
	f := newFactory(t)
	const workers = 50
	errs := make(chan error, 2*workers)
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- f.Register(namedProvider(fmt.Sprintf("P%02d", id)))
		}(i)
		go func() {
			defer wg.Done()
			_, err := f.CreateParameterizedTransform("Exponential", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, f.Classifications(), 3+workers)
}

type namedProvider string

func (p namedProvider) Classification() string { return string(p) }

func (p namedProvider) Parameters() *ct.ParameterListDescriptor {
	return &ct.ParameterListDescriptor{Name: string(p)}
}

func (p namedProvider) Create(*ct.ParameterList) (ct.MathTransform, error) {
	return ct.NewIdentityTransform(3)
}
