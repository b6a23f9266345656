package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

func sampleRecords() []domain.TargetRecord {
	return []domain.TargetRecord{
		{ApplicationName: "Shop", ScanID: "s1", TargetURL: "https://shop.example.com"},
		{ApplicationName: "Blog", ScanID: "s2", TargetURL: "https://blog.example.com"},
		{ApplicationName: "Shop", ScanID: "s3", TargetURL: "https://shop.example.com/admin"},
	}
}

func TestGroupByApplicationOrder(t *testing.T) {
	groups := GroupByApplication(sampleRecords())

	require.Len(t, groups, 2)
	// first-seen order of application names
	assert.Equal(t, "Shop", groups[0].Application)
	assert.Equal(t, "Blog", groups[1].Application)
	// original relative order inside a group
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "s1", groups[0].Records[0].ScanID)
	assert.Equal(t, "s3", groups[0].Records[1].ScanID)
}

func TestGroupByApplicationStable(t *testing.T) {
	recs := sampleRecords()
	assert.Equal(t, GroupByApplication(recs), GroupByApplication(recs))
}

func TestGroupByApplicationEmpty(t *testing.T) {
	assert.Empty(t, GroupByApplication(nil))
}
