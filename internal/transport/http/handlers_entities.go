package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracegrid/internal/platform/middleware"
	"tracegrid/internal/project"
	dErrors "tracegrid/pkg/domain-errors"
	"tracegrid/pkg/platform/httputil"
)

func projectID(r *http.Request) string {
	return chi.URLParam(r, "projectID")
}

func entityID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decode reads a JSON body into v, returning a coded bad-request error on
// malformed input.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// fail renders err and logs server-side failures. Client errors stay at warn
// level so a misbehaving caller cannot flood the error log.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"path", r.URL.Path,
		"error", err.Error(),
	}
	if h.logger != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "request failed", attrs...)
		} else {
			h.logger.WarnContext(ctx, "request rejected", attrs...)
		}
	}
	httputil.WriteError(w, err)
}

// --- requirements ---

func (h *Handler) handleCreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req project.Requirement
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.projects.CreateRequirement(r.Context(), projectID(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateRequirement(w http.ResponseWriter, r *http.Request) {
	var req project.Requirement
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	req.ID = entityID(r)
	updated, err := h.projects.UpdateRequirement(r.Context(), projectID(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleGetRequirement(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetRequirement(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListRequirements(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListRequirements(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteRequirement(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteRequirement(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- test cases ---

func (h *Handler) handleCreateTestCase(w http.ResponseWriter, r *http.Request) {
	var tc project.TestCase
	if err := decode(r, &tc); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.projects.CreateTestCase(r.Context(), projectID(r), tc)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateTestCase(w http.ResponseWriter, r *http.Request) {
	var tc project.TestCase
	if err := decode(r, &tc); err != nil {
		h.fail(w, r, err)
		return
	}
	tc.ID = entityID(r)
	updated, err := h.projects.UpdateTestCase(r.Context(), projectID(r), tc)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleGetTestCase(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetTestCase(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListTestCases(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListTestCases(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteTestCase(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteTestCase(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- risks ---

func (h *Handler) handleCreateRisk(w http.ResponseWriter, r *http.Request) {
	var risk project.Risk
	if err := decode(r, &risk); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.projects.CreateRisk(r.Context(), projectID(r), risk)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateRisk(w http.ResponseWriter, r *http.Request) {
	var risk project.Risk
	if err := decode(r, &risk); err != nil {
		h.fail(w, r, err)
		return
	}
	risk.ID = entityID(r)
	updated, err := h.projects.UpdateRisk(r.Context(), projectID(r), risk)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleGetRisk(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetRisk(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListRisks(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListRisks(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteRisk(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteRisk(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- configuration items ---

func (h *Handler) handleCreateConfigurationItem(w http.ResponseWriter, r *http.Request) {
	var ci project.ConfigurationItem
	if err := decode(r, &ci); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.projects.CreateConfigurationItem(r.Context(), projectID(r), ci)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateConfigurationItem(w http.ResponseWriter, r *http.Request) {
	var ci project.ConfigurationItem
	if err := decode(r, &ci); err != nil {
		h.fail(w, r, err)
		return
	}
	ci.ID = entityID(r)
	updated, err := h.projects.UpdateConfigurationItem(r.Context(), projectID(r), ci)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleGetConfigurationItem(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetConfigurationItem(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListConfigurationItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListConfigurationItems(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteConfigurationItem(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteConfigurationItem(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- documents ---

func (h *Handler) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var doc project.Document
	if err := decode(r, &doc); err != nil {
		h.fail(w, r, err)
		return
	}
	saved, err := h.projects.SaveDocument(r.Context(), projectID(r), doc)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var doc project.Document
	if err := decode(r, &doc); err != nil {
		h.fail(w, r, err)
		return
	}
	doc.ID = entityID(r)
	saved, err := h.projects.SaveDocument(r.Context(), projectID(r), doc)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetDocument(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListDocuments(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteDocument(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- process assets ---

func (h *Handler) handleSaveProcessAsset(w http.ResponseWriter, r *http.Request) {
	var asset project.ProcessAsset
	if err := decode(r, &asset); err != nil {
		h.fail(w, r, err)
		return
	}
	saved, err := h.projects.SaveProcessAsset(r.Context(), projectID(r), asset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleUpdateProcessAsset(w http.ResponseWriter, r *http.Request) {
	var asset project.ProcessAsset
	if err := decode(r, &asset); err != nil {
		h.fail(w, r, err)
		return
	}
	asset.ID = entityID(r)
	saved, err := h.projects.SaveProcessAsset(r.Context(), projectID(r), asset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleGetProcessAsset(w http.ResponseWriter, r *http.Request) {
	got, err := h.projects.GetProcessAsset(r.Context(), projectID(r), entityID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *Handler) handleListProcessAssets(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.ListProcessAssets(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteProcessAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteProcessAsset(r.Context(), projectID(r), entityID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type applyAssetRequest struct {
	GeneratedID string `json:"generatedId"`
}

// handleApplyProcessAsset records one template application: the asset's usage
// count goes up and the generated entity id is remembered.
func (h *Handler) handleApplyProcessAsset(w http.ResponseWriter, r *http.Request) {
	var req applyAssetRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.GeneratedID == "" {
		h.fail(w, r, dErrors.New(dErrors.CodeBadRequest, "generatedId is required"))
		return
	}
	applied, err := h.projects.ApplyProcessAsset(r.Context(), projectID(r), entityID(r), req.GeneratedID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, applied)
}

// --- links ---

func (h *Handler) handleSetLinks(w http.ResponseWriter, r *http.Request) {
	var link project.TraceLink
	if err := decode(r, &link); err != nil {
		h.fail(w, r, err)
		return
	}
	link.RequirementID = chi.URLParam(r, "requirementID")
	saved, err := h.projects.SetLinks(r.Context(), projectID(r), link)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleGetLinks(w http.ResponseWriter, r *http.Request) {
	link, err := h.projects.GetLinks(r.Context(), projectID(r), chi.URLParam(r, "requirementID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, link)
}

func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.projects.ListLinks(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, links)
}
