package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/pkg/apperror"
)

type leadFixture struct {
	svc           *LeadService
	leads         *fakeLeadRepo
	opportunities *fakeOpportunityRepo
	userID        uuid.UUID
}

func newLeadFixture(t *testing.T) *leadFixture {
	t.Helper()

	leads := newFakeLeadRepo()
	opportunities := newFakeOpportunityRepo()
	auditSvc, _ := newTestAuditService()

	return &leadFixture{
		svc:           NewLeadService(leads, opportunities, &fakeTxManager{}, auditSvc),
		leads:         leads,
		opportunities: opportunities,
		userID:        uuid.New(),
	}
}

func (f *leadFixture) createLead(t *testing.T) *entity.Lead {
	t.Helper()
	lead, err := f.svc.CreateLead(context.Background(), &CreateLeadInput{
		Name:       "Northwind",
		Source:     "referral",
		Department: "sales",
		OwnerID:    f.userID,
	})
	require.NoError(t, err)
	return lead
}

func TestCreateLead_StartsNew(t *testing.T) {
	f := newLeadFixture(t)

	lead := f.createLead(t)

	assert.Equal(t, enum.LeadStatusNew, lead.Status)
	assert.Equal(t, f.userID, lead.OwnerID)
}

func TestCreateLead_RequiresNameAndOwner(t *testing.T) {
	f := newLeadFixture(t)

	_, err := f.svc.CreateLead(context.Background(), &CreateLeadInput{OwnerID: f.userID})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateLead(context.Background(), &CreateLeadInput{Name: "Northwind"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestConvertLead_Defaults(t *testing.T) {
	f := newLeadFixture(t)
	lead := f.createLead(t)

	result, err := f.svc.ConvertLead(context.Background(), f.userID, lead.ID, &ConvertLeadInput{})
	require.NoError(t, err)

	assert.Equal(t, enum.LeadStatusConverted, result.Lead.Status)

	opp := result.Opportunity
	assert.Equal(t, "Northwind Opportunity", opp.Title)
	assert.Equal(t, 0.0, opp.Value)
	assert.Equal(t, enum.OpportunityStageProspecting, opp.Stage)
	assert.Equal(t, lead.OwnerID, opp.AssigneeID)
	assert.Equal(t, lead.Department, opp.Department)
	assert.Equal(t, lead.ID, opp.LeadID)

	stored, err := f.leads.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusConverted, stored.Status)
}

func TestConvertLead_Overrides(t *testing.T) {
	f := newLeadFixture(t)
	lead := f.createLead(t)

	result, err := f.svc.ConvertLead(context.Background(), f.userID, lead.ID, &ConvertLeadInput{
		Title: "Northwind expansion deal",
		Value: 12500,
	})
	require.NoError(t, err)

	assert.Equal(t, "Northwind expansion deal", result.Opportunity.Title)
	assert.Equal(t, 12500.0, result.Opportunity.Value)
}

func TestConvertLead_SecondConvertRejected(t *testing.T) {
	f := newLeadFixture(t)
	lead := f.createLead(t)

	_, err := f.svc.ConvertLead(context.Background(), f.userID, lead.ID, &ConvertLeadInput{})
	require.NoError(t, err)

	_, err = f.svc.ConvertLead(context.Background(), f.userID, lead.ID, &ConvertLeadInput{})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	// Exactly one opportunity exists for the lead.
	assert.Len(t, f.opportunities.opportunities, 1)
}

func TestConvertLead_UnknownLead(t *testing.T) {
	f := newLeadFixture(t)

	_, err := f.svc.ConvertLead(context.Background(), f.userID, uuid.New(), &ConvertLeadInput{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateLead_PartialFields(t *testing.T) {
	f := newLeadFixture(t)
	lead := f.createLead(t)

	status := enum.LeadStatusQualified
	updated, err := f.svc.UpdateLead(context.Background(), f.userID, lead.ID, &UpdateLeadInput{
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.LeadStatusQualified, updated.Status)
	assert.Equal(t, "Northwind", updated.Name)
	assert.Equal(t, "referral", updated.Source)
}
