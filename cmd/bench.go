package cmd

import (
	"fmt"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ValentinKolb/respv/cmd/util"
	"github.com/ValentinKolb/respv/lib/value"
	"github.com/ValentinKolb/respv/lib/wire"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark encode, decode and hash over sample values",
	RunE:  runBench,
}

func init() {
	key := "iterations"
	benchCmd.Flags().Int(key, 10000, util.WrapString("How many times to run each operation over the sample corpus"))
}

// benchCorpus builds the fixed set of values every operation is measured
// against: all scalar kinds plus nested composites.
func benchCorpus() []value.Value {
	inner := value.Array(
		value.Number(1),
		value.BlobString([]byte("helloworld")),
		value.Boolean(true),
	)

	m := value.NewMap()
	m.Set(value.SimpleString([]byte("first")), value.Number(1))
	m.Set(value.SimpleString([]byte("second")), value.Number(2))
	m.Set(inner, value.Null())

	return []value.Value{
		value.BlobString([]byte("helloworld")),
		value.SimpleString([]byte("hello world")),
		value.SimpleError([]byte("ERR"), []byte("something went wrong")),
		value.Number(1234),
		value.Null(),
		value.Boolean(true),
		value.BlobError([]byte("SYNTAX"), []byte("invalid syntax")),
		value.VerbatimString(value.VerbatimMarkdown, []byte("# hello")),
		value.Set(value.Number(1), value.Number(2), value.Number(3)),
		value.Array(inner, inner, value.MapValue(m)),
	}
}

func runBench(_ *cobra.Command, _ []string) error {
	iterations := viper.GetInt("iterations")
	corpus := benchCorpus()

	// pre-encode the corpus for the decode benchmark
	encoded := make([][]byte, len(corpus))
	for i, v := range corpus {
		var err error
		if encoded[i], err = wire.Marshal(v); err != nil {
			return err
		}
	}

	registry := gometrics.NewRegistry()
	newHist := func(name string) gometrics.Histogram {
		return gometrics.GetOrRegisterHistogram(name, registry, gometrics.NewExpDecaySample(1028, 0.015))
	}

	marshalHist := newHist("marshal")
	unmarshalHist := newHist("unmarshal")
	hashHist := newHist("hash")
	lengthHist := newHist("length")

	fmt.Printf("running %d iterations over %d sample values...\n\n", iterations, len(corpus))

	for i := 0; i < iterations; i++ {
		for j, v := range corpus {
			start := time.Now()
			if _, err := wire.Marshal(v); err != nil {
				return err
			}
			marshalHist.Update(time.Since(start).Nanoseconds())

			start = time.Now()
			if _, err := wire.Unmarshal(encoded[j]); err != nil {
				return err
			}
			unmarshalHist.Update(time.Since(start).Nanoseconds())

			start = time.Now()
			value.Hash(v)
			hashHist.Update(time.Since(start).Nanoseconds())

			start = time.Now()
			value.EncodedLength(v)
			lengthHist.Update(time.Since(start).Nanoseconds())
		}
	}

	printHist := func(name string, h gometrics.Histogram) {
		ps := h.Percentiles([]float64{0.5, 0.95, 0.99})
		fmt.Printf("%-10s  count=%-8d mean=%8.0fns  p50=%8.0fns  p95=%8.0fns  p99=%8.0fns\n",
			name, h.Count(), h.Mean(), ps[0], ps[1], ps[2])
	}

	printHist("marshal", marshalHist)
	printHist("unmarshal", unmarshalHist)
	printHist("hash", hashHist)
	printHist("length", lengthHist)

	return nil
}
