/* Copyright (C) 2026 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import   "github.com/montanaflynn/stats"
import   "golang.org/x/sync/errgroup"
import   "gopkg.in/yaml.v3"

import . "github.com/bioc/methodical"

/* -------------------------------------------------------------------------- */

type Config struct {
  Upstream   int     `yaml:"upstream"`
  Downstream int     `yaml:"downstream"`
  Method     string  `yaml:"method"`
  Adjust     string  `yaml:"adjust"`
  PValue     float64 `yaml:"p-value"`
  NoSmooth   bool    `yaml:"no-smooth"`
  Offset     int     `yaml:"smooth-offset"`
  Factor     float64 `yaml:"smooth-factor"`
  MinSites   int     `yaml:"min-sites"`
  MinGap     int     `yaml:"min-gap"`
  Threads    int     `yaml:"threads"`
  Header     bool    `yaml:"header"`
  Gzip       bool    `yaml:"gzip"`
  Verbose    int     `yaml:"-"`
}

func defaultConfig() Config {
  config := Config{}
  config.Upstream   = 5000
  config.Downstream = 5000
  config.Method     = "pearson"
  config.Adjust     = "none"
  config.PValue     = 0.005
  config.Offset     = 10
  config.Factor     = 0.75
  config.MinSites   = 5
  config.MinGap     = 150
  config.Threads    = 1
  return config
}

func (config *Config) ImportYaml(filename string) error {
  data, err := os.ReadFile(filename)
  if err != nil {
    return err
  }
  return yaml.Unmarshal(data, config)
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importData(config Config, ucscGenome, ucscTable, filenameAnchors, filenameExpr, filenameMeth string) ([]Anchor, ExprTable, SimpleMethMatrix) {
  var anchors []Anchor
  var expr    ExprTable
  var meth    SimpleMethMatrix

  g := errgroup.Group{}
  g.Go(func() error {
    if ucscGenome != "" {
      PrintStderr(config, 1, "Importing anchors from UCSC table `%s.%s'\n", ucscGenome, ucscTable)
      result, err := ImportAnchorsFromUCSC(ucscGenome, ucscTable, config.Upstream, config.Downstream)
      if err != nil {
        return err
      }
      anchors = result
    } else {
      PrintStderr(config, 1, "Reading anchors from `%s'\n", filenameAnchors)
      result, err := ImportAnchors(filenameAnchors, config.Upstream, config.Downstream)
      if err != nil {
        return err
      }
      anchors = result
    }
    return nil
  })
  g.Go(func() error {
    PrintStderr(config, 1, "Reading expression table from `%s'\n", filenameExpr)
    return expr.ImportTable(filenameExpr)
  })
  g.Go(func() error {
    PrintStderr(config, 1, "Reading methylation table from `%s'\n", filenameMeth)
    return meth.ImportTable(filenameMeth)
  })
  if err := g.Wait(); err != nil {
    log.Fatal(err)
  }
  return anchors, expr, meth
}

/* -------------------------------------------------------------------------- */

func writeCors(config Config, results []AnchorResult, filename string) {
  PrintStderr(config, 1, "Writing site correlations to `%s'\n", filename)
  f, err := os.Create(filename)
  if err != nil {
    log.Fatal(err)
  }
  defer f.Close()
  writer := bufio.NewWriter(f)
  defer writer.Flush()

  for _, result := range results {
    if result.Err != nil {
      continue
    }
    if err := result.Cors.WriteTable(writer, true); err != nil {
      log.Fatal(err)
    }
  }
}

func writeRegions(config Config, regions RegionList, filenameOut, filenameBed string) {
  if filenameOut == "" {
    if err := regions.WriteTable(os.Stdout, config.Header); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing regions to `%s'\n", filenameOut)
    if err := regions.ExportTable(filenameOut, config.Header, config.Gzip); err != nil {
      log.Fatal(err)
    }
  }
  if filenameBed != "" {
    PrintStderr(config, 1, "Writing regions to `%s'\n", filenameBed)
    if err := regions.WriteBed6(filenameBed, config.Gzip); err != nil {
      log.Fatal(err)
    }
  }
}

func printSummary(config Config, regions RegionList) {
  if len(regions) == 0 {
    PrintStderr(config, 1, "Called no regions\n")
    return
  }
  widths := make([]float64, len(regions))
  scores := make([]float64, len(regions))
  npos   := 0
  for i, region := range regions {
    widths[i] = float64(region.Len())
    scores[i] = region.MeanScore
    if region.Direction == Positive {
      npos++
    }
  }
  medianWidth, _ := stats.Median(widths)
  medianScore, _ := stats.Median(scores)
  PrintStderr(config, 1, "Called %d regions (%d positive, %d negative)\n", len(regions), npos, len(regions)-npos)
  PrintStderr(config, 1, "Median region width: %.0f\n", medianWidth)
  PrintStderr(config, 1, "Median region score: %.4f\n", medianScore)
}

/* -------------------------------------------------------------------------- */

func methodicalTMR(config Config, ucscGenome, ucscTable, filenameAnchors, filenameExpr, filenameMeth, filenameOut, filenameBed, filenameCors string) {
  anchors, expr, meth := importData(config, ucscGenome, ucscTable, filenameAnchors, filenameExpr, filenameMeth)

  method, err := ParseCorMethod(config.Method)
  if err != nil {
    log.Fatal(err)
  }
  params := BatchParams{
    Method : method,
    Adjust : config.Adjust,
    Region : RegionParams{
      PValue  : config.PValue,
      Smooth  : !config.NoSmooth,
      Offset  : config.Offset,
      Factor  : config.Factor,
      MinSites: config.MinSites,
      MinGap  : config.MinGap },
    Threads: config.Threads }

  PrintStderr(config, 1, "Processing %d anchors on %d thread(s)\n", len(anchors), config.Threads)
  results, err := RunAnchors(meth, expr, anchors, params)
  if err != nil {
    log.Fatal(err)
  }
  failed := 0
  for _, result := range results {
    if result.Err != nil {
      failed++
      PrintStderr(config, 2, "skipping anchor: %v\n", result.Err)
    }
  }
  if failed > 0 {
    PrintStderr(config, 1, "Skipped %d anchors without results\n", failed)
  }
  regions := CollectRegions(results)
  printSummary(config, regions)

  if filenameCors != "" {
    writeCors(config, results, filenameCors)
  }
  writeRegions(config, regions, filenameOut, filenameBed)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := defaultConfig()
  options := getopt.New()

  optConfig     := options. StringLong("config",        0 , "", "yaml configuration file (options given on the command line take precedence)")
  optUCSC       := options. StringLong("ucsc",          0 , "", "import anchors from a UCSC genome browser table [format: genome:table, e.g. hg19:knownGene]")
  optUpstream   := options. StringLong("upstream",      0 , "", "number of bps covered by the window upstream of the anchor [default: 5000]")
  optDownstream := options. StringLong("downstream",    0 , "", "number of bps covered by the window downstream of the anchor [default: 5000]")
  optMethod     := options. StringLong("method",        0 , "", "correlation method, i.e. pearson or spearman [default: pearson]")
  optAdjust     := options. StringLong("adjust",        0 , "", "p-value adjustment method, i.e. none, bonferroni, holm, BH, or BY [default: none]")
  optPValue     := options. StringLong("p-value",       0 , "", "p-value threshold for calling regions [default: 0.005]")
  optNoSmooth   := options.   BoolLong("no-smooth",     0 ,     "threshold raw instead of smoothed scores")
  optOffset     := options. StringLong("smooth-offset", 0 , "", "number of neighboring sites on each side included in the smoothing window [default: 10]")
  optFactor     := options. StringLong("smooth-factor", 0 , "", "exponential decay factor of the smoothing kernel, must be in (0,1] [default: 0.75]")
  optMinSites   := options. StringLong("min-sites",     0 , "", "minimum number of methylation sites per region [default: 5]")
  optMinGap     := options. StringLong("min-gap",       0 , "", "maximum gap width between merged regions [default: 150]")
  optThreads    := options. StringLong("threads",       0 , "", "number of threads [default: 1]")
  optOutput     := options. StringLong("output",        0 , "", "write regions table to file [default: stdout]")
  optBed        := options. StringLong("bed",           0 , "", "write regions to bed file")
  optCors       := options. StringLong("site-cors",     0 , "", "write per-anchor site correlations to file")
  optHeader     := options.   BoolLong("header",        0 ,     "print table header")
  optGzip       := options.   BoolLong("gzip",          0 ,     "compress output files")
  optVerbose    := options.CounterLong("verbose",      'v',     "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",         'h',     "print help")

  options.SetParameters("<ANCHORS.table> <EXPRESSION.table> <METHYLATION.table>")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optVerbose != 0 {
    config.Verbose = *optVerbose
  }
  if *optConfig != "" {
    if err := config.ImportYaml(*optConfig); err != nil {
      log.Fatal(err)
    }
  }
  if *optUpstream != "" {
    t, err := strconv.ParseInt(*optUpstream, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.Upstream = int(t)
  }
  if *optDownstream != "" {
    t, err := strconv.ParseInt(*optDownstream, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.Downstream = int(t)
  }
  if *optMethod != "" {
    config.Method = *optMethod
  }
  if *optAdjust != "" {
    config.Adjust = *optAdjust
  }
  if *optPValue != "" {
    t, err := strconv.ParseFloat(*optPValue, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.PValue = t
  }
  if *optNoSmooth {
    config.NoSmooth = true
  }
  if *optOffset != "" {
    t, err := strconv.ParseInt(*optOffset, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.Offset = int(t)
  }
  if *optFactor != "" {
    t, err := strconv.ParseFloat(*optFactor, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.Factor = t
  }
  if *optMinSites != "" {
    t, err := strconv.ParseInt(*optMinSites, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.MinSites = int(t)
  }
  if *optMinGap != "" {
    t, err := strconv.ParseInt(*optMinGap, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.MinGap = int(t)
  }
  if *optThreads != "" {
    t, err := strconv.ParseInt(*optThreads, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    config.Threads = int(t)
  }
  if *optHeader {
    config.Header = true
  }
  if *optGzip {
    config.Gzip = true
  }
  ucscGenome := ""
  ucscTable  := ""
  if *optUCSC != "" {
    tmp := strings.Split(*optUCSC, ":")
    if len(tmp) != 2 {
      log.Fatalf("invalid ucsc table `%s', expected format genome:table", *optUCSC)
    }
    ucscGenome = tmp[0]
    ucscTable  = tmp[1]
  }
  // parse arguments
  //////////////////////////////////////////////////////////////////////////////
  filenameAnchors := ""
  filenameExpr    := ""
  filenameMeth    := ""
  if ucscGenome != "" {
    if len(options.Args()) != 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameExpr = options.Args()[0]
    filenameMeth = options.Args()[1]
  } else {
    if len(options.Args()) != 3 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameAnchors = options.Args()[0]
    filenameExpr    = options.Args()[1]
    filenameMeth    = options.Args()[2]
  }
  methodicalTMR(config, ucscGenome, ucscTable, filenameAnchors, filenameExpr, filenameMeth, *optOutput, *optBed, *optCors)
}
