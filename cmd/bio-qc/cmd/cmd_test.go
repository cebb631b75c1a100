package cmd

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/bioqc/encoding/bamprovider"
	"github.com/grailbio/bioqc/interval"
	"github.com/grailbio/bioqc/maprate"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/cmdline"
)

func TestParseMaprateArgs(t *testing.T) {
	opts, err := parseMaprateArgs([]string{"OUTPUT=out.txt", "INPUT=in.bam"})
	require.NoError(t, err)
	expect.EQ(t, opts, maprate.Opts{InputPath: "in.bam", OutputPath: "out.txt"})

	opts, err = parseMaprateArgs([]string{"INPUT=s3://b/in.sam", "OUTPUT=out.txt", "INTERVAL=panel.bed"})
	require.NoError(t, err)
	expect.EQ(t, opts, maprate.Opts{InputPath: "s3://b/in.sam", OutputPath: "out.txt", IntervalPath: "panel.bed"})

	opts, err = parseMaprateArgs([]string{"INPUT=in.dat", "OUTPUT=out.txt", "FORMAT=sam"})
	require.NoError(t, err)
	expect.EQ(t, opts, maprate.Opts{InputPath: "in.dat", OutputPath: "out.txt", FileType: bamprovider.SAM})

	// Later values win, as with repeated flags.
	opts, err = parseMaprateArgs([]string{"INPUT=a.bam", "INPUT=b.bam", "OUTPUT=o"})
	require.NoError(t, err)
	expect.EQ(t, opts.InputPath, "b.bam")

	for _, argv := range [][]string{
		nil,
		{"INPUT=in.bam"},
		{"OUTPUT=out.txt"},
		{"INPUT=in.bam", "OUTPUT=out.txt", "REGIONS=panel.bed"},
		{"INPUT=in.bam", "OUTPUT=out.txt", "input=x"},
		{"INPUT=", "OUTPUT=out.txt"},
		{"INPUT=in.bam", "OUTPUT=out.txt", "INTERVAL="},
		{"INPUT=in.bam", "OUTPUT=out.txt", "FORMAT=cram"},
		{"INPUT=in.bam", "OUTPUT=out.txt", "FORMAT="},
	} {
		_, err := parseMaprateArgs(argv)
		assert.Error(t, err, "%v", argv)
	}
}

const testSAM = "@HD\tVN:1.5\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:1000\n" +
	"r1\t0\tchr1\t11\t60\t10M\t*\t0\t0\tACGTACGTAC\tIIIIIIIIII\n" +
	"r2\t4\t*\t0\t0\t*\t*\t0\t0\tACGTACGTAC\tIIIIIIIIII\n"

func newEnv(stdout *bytes.Buffer) *cmdline.Env {
	return &cmdline.Env{
		Stdout: stdout,
		Stderr: ioutil.Discard,
		Vars:   map[string]string{},
	}
}

func TestMaprateCommand(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	samPath := filepath.Join(tmpDir, "in.sam")
	require.NoError(t, ioutil.WriteFile(samPath, []byte(testSAM), 0644))
	bedPath := filepath.Join(tmpDir, "panel.bed")
	require.NoError(t, ioutil.WriteFile(bedPath, []byte("chr1\t1\t15\n"), 0644))
	reportPath := filepath.Join(tmpDir, "report.txt")

	var stdout bytes.Buffer
	require.NoError(t, cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout),
		[]string{"maprate", "INPUT=" + samPath, "OUTPUT=" + reportPath, "INTERVAL=" + bedPath}))
	got, err := ioutil.ReadFile(reportPath)
	require.NoError(t, err)
	// r1 covers [11, 20], of which [11, 15] is in the panel.
	expect.EQ(t, string(got), `Total reads: 2
Mapped read count: 1  50.00%
Unmapped read count: 1  50.00%
Secondary or supplementary read: 0  0.00%
Total length of reads: 20
Read has overlaps: 1  50.00%
Total overlap length in reads: 5  25.00%
`)

	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"maprate", "INPUT=" + samPath})
	expect.EQ(t, err, cmdline.ErrUsage)
	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout),
		[]string{"maprate", "INPUT=" + samPath, "OUTPUT=" + reportPath, "BOGUS=1"})
	expect.EQ(t, err, cmdline.ErrUsage)
	// An empty INTERVAL is rejected rather than read as "no regions".
	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout),
		[]string{"maprate", "INPUT=" + samPath, "OUTPUT=" + reportPath, "INTERVAL="})
	expect.EQ(t, err, cmdline.ErrUsage)
}

func TestPanelLengthCommand(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	bedPath := filepath.Join(tmpDir, "panel.bed")
	require.NoError(t, ioutil.WriteFile(bedPath, []byte("chr1\t1\t11\nchr1\t20\t40\nchr2\t5\t9\nchr2\t7\t17\n"), 0644))

	var stdout bytes.Buffer
	require.NoError(t, panelLength(context.Background(), &stdout, bedPath, interval.DefaultPanelLengthOpts))
	expect.EQ(t, stdout.String(), "20\t0.2500000000\n10\t0.7500000000\n4\t1.0000000000\n")

	stdout.Reset()
	require.NoError(t, cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout),
		[]string{"panel-length", "-format=csv", "-query=5", bedPath}))
	expect.EQ(t, stdout.String(), "length,percentage\n10,0.7500000000\n")

	err := cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"panel-length"})
	expect.EQ(t, err, cmdline.ErrUsage)
	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"panel-length", "-format=json", bedPath})
	assert.Error(t, err)
	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"panel-length", filepath.Join(tmpDir, "panel.txt")})
	assert.Error(t, err)
}

func TestFastqFilterCommand(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	in := filepath.Join(tmpDir, "in.fastq")
	out := filepath.Join(tmpDir, "out.fastq")
	report := filepath.Join(tmpDir, "report.txt")
	require.NoError(t, ioutil.WriteFile(in, []byte("@r1\nACGTACGTAC\n+\nIIIIIIII##\n@r2\nACG\n+\nIII\n"), 0644))

	var stdout bytes.Buffer
	require.NoError(t, cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout),
		[]string{"fastq-filter", "-min-read-length=5", "-report=" + report, in, out}))
	got, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	expect.EQ(t, string(got), "@r1\nACGTACGT\n+\nIIIIIIII\n")
	got, err = ioutil.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Total clipped base: 2\t\t")
	assert.Contains(t, string(got), "\tFilter 'ShortReadFilter': 1\t\t")

	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"fastq-filter", in})
	expect.EQ(t, err, cmdline.ErrUsage)
	err = cmdline.ParseAndRun(newCmdRoot(), newEnv(&stdout), []string{"fastq-filter", "-score-type=phred", in, out})
	assert.Error(t, err)
}
