package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShayCichocki/devcrew/internal/orchestrator"
	"github.com/ShayCichocki/devcrew/internal/store"
	"github.com/ShayCichocki/devcrew/internal/version"
	"github.com/ShayCichocki/devcrew/pkg/models"
)

// createWorkflowRequest is the body for POST /workflows.
type createWorkflowRequest struct {
	WorkflowType   string          `json:"workflow_type" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	ProjectContext models.Metadata `json:"project_context"`
}

// completeTaskRequest is the body for POST /tasks/:id/complete.
type completeTaskRequest struct {
	Output    string   `json:"output"`
	Artifacts []string `json:"artifacts"`
}

func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "devcrew",
		"version":   version.Get(),
		"agents":    s.orch.Catalog().AgentNames(),
		"templates": s.orch.Catalog().TemplateTypes(),
	})
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version.Get(),
	})
}

func (s *Server) statusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.Status())
}

func (s *Server) createWorkflowHandler(c *gin.Context) {
	var req createWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.orch.CreateWorkflow(req.WorkflowType, req.Description, req.ProjectContext)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) listWorkflowsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workflows": s.orch.ListWorkflows()})
}

func (s *Server) getWorkflowHandler(c *gin.Context) {
	detail, err := s.orch.GetWorkflow(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) nextTasksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next_tasks": s.orch.NextTasks()})
}

func (s *Server) getTaskHandler(c *gin.Context) {
	task, err := s.orch.GetTask(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) completeTaskHandler(c *gin.Context) {
	var req completeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.orch.CompleteTask(c.Param("id"), req.Output, req.Artifacts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listAgentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.orch.Catalog().Agents()})
}

func (s *Server) getAgentHandler(c *gin.Context) {
	agent, ok := s.orch.Catalog().Agent(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent: " + c.Param("name")})
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (s *Server) agentResponseHandler(c *gin.Context) {
	var resp models.AgentResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp.Agent = c.Param("name")

	if err := s.orch.LogAgentResponse(resp); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged", "agent": resp.Agent})
}

func (s *Server) listTemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": s.orch.Catalog().Templates()})
}

// writeError maps domain errors to HTTP statuses: missing entities to 404,
// completion races to 409, unknown templates to 400, everything else to 500.
func writeError(c *gin.Context, err error) {
	var unknownTemplate *orchestrator.UnknownTemplateError
	switch {
	case store.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case store.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case store.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &unknownTemplate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
