package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tracegrid/internal/audit"
	dErrors "tracegrid/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	trail   *recordingAuditor
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.trail = &recordingAuditor{}
	var err error
	s.service, err = New(NewInMemoryStores(), WithAuditor(s.trail))
	s.Require().NoError(err)
}

type recordingAuditor struct {
	events []audit.Event
}

func (r *recordingAuditor) Record(_ context.Context, e audit.Event) {
	r.events = append(r.events, e)
}

func (s *ServiceSuite) requirement(id string) Requirement {
	return Requirement{
		ID:          id,
		Description: "The system shall persist trace links",
		Priority:    PriorityHigh,
		Status:      RequirementActive,
	}
}

func (s *ServiceSuite) TestNew() {
	s.Run("missing store returns error", func() {
		stores := NewInMemoryStores()
		stores.Links = nil
		_, err := New(stores)
		s.Error(err)
	})

	s.Run("full store set returns service", func() {
		svc, err := New(NewInMemoryStores())
		s.NoError(err)
		s.NotNil(svc)
	})
}

func (s *ServiceSuite) TestCreateRequirement() {
	ctx := context.Background()

	s.Run("stamps timestamps and default actor", func() {
		created, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-1"))
		s.Require().NoError(err)
		s.False(created.CreatedAt.IsZero())
		s.Equal(created.CreatedAt, created.UpdatedAt)
		s.Equal(ActorUser, created.CreatedBy)
	})

	s.Run("duplicate id is a conflict", func() {
		_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-DUP"))
		s.Require().NoError(err)
		_, err = s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-DUP"))
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("same id in another project is fine", func() {
		_, err := s.service.CreateRequirement(ctx, "p2", s.requirement("REQ-DUP"))
		s.NoError(err)
	})

	s.Run("invalid priority rejected", func() {
		r := s.requirement("REQ-BAD")
		r.Priority = "Urgent"
		_, err := s.service.CreateRequirement(ctx, "p1", r)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("emits audit event", func() {
		s.trail.events = nil
		_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-AUDIT"))
		s.Require().NoError(err)
		s.Require().Len(s.trail.events, 1)
		s.Equal("requirement_created", s.trail.events[0].Action)
		s.Equal("REQ-AUDIT", s.trail.events[0].EntityID)
	})
}

func (s *ServiceSuite) TestUpdateRequirement() {
	ctx := context.Background()

	created, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-U"))
	s.Require().NoError(err)

	s.service.now = func() time.Time { return created.CreatedAt.Add(time.Hour) }

	updated := created
	updated.Status = RequirementVerified
	updated.UpdatedBy = ActorAI
	got, err := s.service.UpdateRequirement(ctx, "p1", updated)
	s.Require().NoError(err)

	s.Equal(created.CreatedAt, got.CreatedAt, "creation metadata survives updates")
	s.Equal(created.CreatedBy, got.CreatedBy)
	s.True(got.UpdatedAt.After(got.CreatedAt))
	s.Equal(ActorAI, got.UpdatedBy)

	s.Run("unknown id is not found", func() {
		_, err := s.service.UpdateRequirement(ctx, "p1", s.requirement("REQ-MISSING"))
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDeleteRequirementCascadesLinks() {
	ctx := context.Background()

	_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-DEL"))
	s.Require().NoError(err)
	_, err = s.service.CreateTestCase(ctx, "p1", TestCase{ID: "TC-1", Status: TestPassed})
	s.Require().NoError(err)
	_, err = s.service.SetLinks(ctx, "p1", TraceLink{RequirementID: "REQ-DEL", TestIDs: []string{"TC-1"}})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteRequirement(ctx, "p1", "REQ-DEL"))

	links, err := s.service.ListLinks(ctx, "p1")
	s.Require().NoError(err)
	s.Empty(links, "link row must be removed with its requirement")
}

func (s *ServiceSuite) TestDeleteTestCasePrunesLinks() {
	ctx := context.Background()

	_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-P"))
	s.Require().NoError(err)
	_, err = s.service.CreateTestCase(ctx, "p1", TestCase{ID: "TC-A", Status: TestPassed})
	s.Require().NoError(err)
	_, err = s.service.CreateTestCase(ctx, "p1", TestCase{ID: "TC-B", Status: TestFailed})
	s.Require().NoError(err)
	_, err = s.service.SetLinks(ctx, "p1", TraceLink{RequirementID: "REQ-P", TestIDs: []string{"TC-A", "TC-B"}})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteTestCase(ctx, "p1", "TC-A"))

	link, err := s.service.GetLinks(ctx, "p1", "REQ-P")
	s.Require().NoError(err)
	s.Equal([]string{"TC-B"}, link.TestIDs)
}

func (s *ServiceSuite) TestSetLinksIntegrity() {
	ctx := context.Background()

	_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-L"))
	s.Require().NoError(err)

	s.Run("unknown requirement is not found", func() {
		_, err := s.service.SetLinks(ctx, "p1", TraceLink{RequirementID: "REQ-GHOST"})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})

	s.Run("dangling references rejected", func() {
		_, err := s.service.SetLinks(ctx, "p1", TraceLink{
			RequirementID: "REQ-L",
			TestIDs:       []string{"TC-GHOST"},
		})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
		s.Contains(err.Error(), "test:TC-GHOST")
	})

	s.Run("absent row reads as empty row", func() {
		link, err := s.service.GetLinks(ctx, "p1", "REQ-L")
		s.Require().NoError(err)
		s.Equal("REQ-L", link.RequirementID)
		s.Empty(link.TestIDs)
	})

	s.Run("id sets are trimmed and deduped", func() {
		_, err := s.service.CreateTestCase(ctx, "p1", TestCase{ID: "TC-L", Status: TestPassed})
		s.Require().NoError(err)

		link, err := s.service.SetLinks(ctx, "p1", TraceLink{
			RequirementID: "REQ-L",
			TestIDs:       []string{" TC-L ", "TC-L", ""},
		})
		s.Require().NoError(err)
		s.Equal([]string{"TC-L"}, link.TestIDs)
	})
}

func (s *ServiceSuite) TestConfigurationItemDependencies() {
	ctx := context.Background()

	ci := func(id string, deps ...string) ConfigurationItem {
		return ConfigurationItem{
			ID:        id,
			Name:      id,
			Type:      CISoftwareComponent,
			Version:   "1.0",
			Status:    CIInDevelopment,
			DependsOn: deps,
		}
	}

	_, err := s.service.CreateConfigurationItem(ctx, "p1", ci("CI-A"))
	s.Require().NoError(err)
	_, err = s.service.CreateConfigurationItem(ctx, "p1", ci("CI-B", "CI-A"))
	s.Require().NoError(err)

	s.Run("unknown dependency rejected", func() {
		_, err := s.service.CreateConfigurationItem(ctx, "p1", ci("CI-C", "CI-GHOST"))
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("cycle rejected", func() {
		// CI-A -> CI-B would close CI-A -> CI-B -> CI-A.
		_, err := s.service.UpdateConfigurationItem(ctx, "p1", ci("CI-A", "CI-B"))
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
		s.Contains(err.Error(), "cycle")
	})

	s.Run("self dependency rejected", func() {
		_, err := s.service.CreateConfigurationItem(ctx, "p1", ci("CI-SELF", "CI-SELF"))
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("delete of depended-on item is a conflict", func() {
		err := s.service.DeleteConfigurationItem(ctx, "p1", "CI-A")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("delete of leaf item succeeds", func() {
		s.NoError(s.service.DeleteConfigurationItem(ctx, "p1", "CI-B"))
	})
}

func (s *ServiceSuite) TestApplyProcessAsset() {
	ctx := context.Background()

	_, err := s.service.SaveProcessAsset(ctx, "p1", ProcessAsset{
		ID:   "PA-1",
		Name: "Login requirement archetype",
		Kind: AssetRequirementArchetype,
		Body: "The system shall ...",
	})
	s.Require().NoError(err)

	got, err := s.service.ApplyProcessAsset(ctx, "p1", "PA-1", "REQ-GEN-1")
	s.Require().NoError(err)
	s.Equal(1, got.UsageCount)
	s.Equal([]string{"REQ-GEN-1"}, got.GeneratedItems)

	// Re-applying for the same generated id still counts a use but does not
	// duplicate the item reference.
	got, err = s.service.ApplyProcessAsset(ctx, "p1", "PA-1", "REQ-GEN-1")
	s.Require().NoError(err)
	s.Equal(2, got.UsageCount)
	s.Equal([]string{"REQ-GEN-1"}, got.GeneratedItems)
}

func (s *ServiceSuite) TestSnapshot() {
	ctx := context.Background()

	_, err := s.service.CreateRequirement(ctx, "p1", s.requirement("REQ-S"))
	s.Require().NoError(err)
	_, err = s.service.CreateTestCase(ctx, "p1", TestCase{ID: "TC-S", Status: TestPending})
	s.Require().NoError(err)
	_, err = s.service.CreateRisk(ctx, "p1", Risk{ID: "RISK-S", Probability: RiskHigh, Impact: RiskLow, Status: RiskOpen})
	s.Require().NoError(err)
	_, err = s.service.SetLinks(ctx, "p1", TraceLink{RequirementID: "REQ-S", TestIDs: []string{"TC-S"}})
	s.Require().NoError(err)

	snap, err := s.service.Snapshot(ctx, "p1")
	s.Require().NoError(err)
	s.Len(snap.Requirements, 1)
	s.Len(snap.TestCases, 1)
	s.Len(snap.Risks, 1)
	s.Len(snap.Links, 1)
	s.Equal([]string{"TC-S"}, snap.LinkFor("REQ-S").TestIDs)
	s.Empty(snap.LinkFor("REQ-OTHER").TestIDs)
}
