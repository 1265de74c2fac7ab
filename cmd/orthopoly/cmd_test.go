package main

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/orthopoly/polynomial"
)

func execute(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestBuildCommand(t *testing.T) {

	out, err := execute(t, "build", "--family", "legendre", "--dim", "3", "--panels", "1", "--log-level", "error")
	require.NoError(t, err)

	require.Contains(t, out, "legendre (dimension 3, order 5, panels 1)")
	require.Contains(t, out, "gram residual:")
	require.Contains(t, out, "digest:")

	t.Run("Parse/L_2", func(t *testing.T) {
		var line string
		for _, l := range strings.Split(out, "\n") {
			if strings.HasPrefix(l, "L_2(x) = ") {
				line = strings.TrimPrefix(l, "L_2(x) = ")
			}
		}
		require.NotEmpty(t, line)

		p, err := polynomial.Parse[float64](line)
		require.NoError(t, err)
		require.Equal(t, 2, p.Degree())
		require.InDelta(t, 0, p.Evaluate(1/1.7320508075688772), 1e-9)
	})

	t.Run("Classical", func(t *testing.T) {
		out, err := execute(t, "build", "--family", "legendre", "--dim", "3", "--panels", "1", "--classical", "--log-level", "error")
		require.NoError(t, err)
		for _, l := range strings.Split(out, "\n") {
			if strings.HasPrefix(l, "L_2(x) = ") {
				p, err := polynomial.Parse[float64](strings.TrimPrefix(l, "L_2(x) = "))
				require.NoError(t, err)
				// P_2(x) = (3x^2 - 1)/2
				require.True(t, p.ApproxEqual(polynomial.New(-0.5, 0, 1.5), 1e-12), p.String())
			}
		}
	})
}

func TestBuildUniform(t *testing.T) {

	t.Run("Classical", func(t *testing.T) {
		out, err := execute(t, "build", "--family", "uniform", "--domain", "0,2", "--dim", "3", "--panels", "10", "--classical", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, out, "uniform (dimension 3, order 5, panels 10)")

		var found bool
		for _, l := range strings.Split(out, "\n") {
			if strings.HasPrefix(l, "S_2(x) = ") {
				found = true
				p, err := polynomial.Parse[float64](strings.TrimPrefix(l, "S_2(x) = "))
				require.NoError(t, err)
				// P_2(x - 1) = (3(x-1)^2 - 1)/2
				require.True(t, p.ApproxEqual(polynomial.New(1.0, -3, 1.5), 1e-10), p.String())
			}
		}
		require.True(t, found)
	})

	t.Run("Verify", func(t *testing.T) {
		out, err := execute(t, "verify", "--family", "uniform", "--panels", "1", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, out, "uniform: ")
		require.NotContains(t, out, "FAIL")
	})

	t.Run("InvalidDomain", func(t *testing.T) {
		for _, domain := range []string{"1,0", "0,1,2"} {
			_, err := execute(t, "build", "--family", "uniform", "--domain", domain)
			require.Error(t, err, domain)
		}
	})
}

func TestRootCheck(t *testing.T) {
	require.True(t, (&result{rootError: 1e-4}).passes(1e-3))
	require.True(t, (&result{rootError: 1e-3}).passes(1e-3))
	require.False(t, (&result{rootError: 2e-3}).passes(1e-3))
	require.False(t, (&result{rootError: math.NaN()}).passes(1e-3))
	require.False(t, (&result{rootError: math.Inf(1)}).passes(1e-3))
}

func TestVerifyCommand(t *testing.T) {

	t.Run("Pass", func(t *testing.T) {
		out, err := execute(t, "verify", "--family", "legendre,chebyshev2", "--panels", "1000", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, out, "legendre: ")
		require.Contains(t, out, "chebyshev2: ")
		require.NotContains(t, out, "FAIL")
	})

	t.Run("Fail", func(t *testing.T) {
		// Ten panels are far too few for the singular Chebyshev weight.
		out, err := execute(t, "verify", "--family", "chebyshev", "--panels", "10", "--log-level", "error")
		require.ErrorIs(t, err, errRootCheck)
		require.Contains(t, out, "FAIL")
	})

	t.Run("InvalidFamily", func(t *testing.T) {
		_, err := execute(t, "verify", "--family", "hermite")
		require.Error(t, err)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, err := execute(t, "verify", "--log-level", "loud")
		require.Error(t, err)
	})
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--log-level", "error", "--json")
	require.NoError(t, err)
	require.Contains(t, out, "Legendre:")
	require.Contains(t, out, "L_4(x) = ")
	require.Contains(t, out, "Chebyshev:")
	require.Contains(t, out, "T_4(x) = ")
	require.Contains(t, out, "T_2(0.7071067811865476) = ")
}

func TestConfigFlagOverride(t *testing.T) {
	path := writeConfig(t, "dimension: 2\nfamilies: [legendre]\npanels: 1\nlog_level: error\n")

	out, err := execute(t, "build", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "legendre (dimension 2, order 5, panels 1)")

	out, err = execute(t, "build", "--config", path, "--dim", "4")
	require.NoError(t, err)
	require.Contains(t, out, "legendre (dimension 4, order 5, panels 1)")
}
