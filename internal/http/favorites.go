package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"livraria/internal/database"
	"livraria/internal/entities"
	"livraria/internal/tasks"
)

// FavoritesController manages the per-device favourites list. Reads come
// from local data; backend writes happen best-effort inside the store.
type FavoritesController struct {
	store      FavoritesStore
	db         *database.Database
	taskClient *tasks.Client
	scheduler  SyncScheduler
}

func NewFavoritesController(store FavoritesStore, db *database.Database, taskClient *tasks.Client, scheduler SyncScheduler) *FavoritesController {
	return &FavoritesController{
		store:      store,
		db:         db,
		taskClient: taskClient,
		scheduler:  scheduler,
	}
}

// ListFavorites returns the locally stored favourites.
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	books, err := fc.store.List()
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

// AddFavorite marks a book as a favourite.
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if book.ID == "" {
		respondBadRequest(c, "book id is required")
		return
	}

	if err := fc.store.Add(c.Request.Context(), book); err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "favorite added"})
}

// CheckFavorite reports whether a book is a favourite.
func (fc *FavoritesController) CheckFavorite(c *gin.Context) {
	googleBooksID := c.Query("id")
	if googleBooksID == "" {
		respondBadRequest(c, "id parameter is required")
		return
	}

	isFavorite, err := fc.store.IsFavorite(c.Request.Context(), googleBooksID)
	if err != nil {
		respondInternalError(c, err, "check favorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

// RemoveFavorite unmarks a favourite.
func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	googleBooksID := c.Param("id")
	if googleBooksID == "" {
		respondBadRequest(c, "book id is required")
		return
	}

	if err := fc.store.Remove(c.Request.Context(), googleBooksID); err != nil {
		respondInternalError(c, err, "remove favorite")
		return
	}
	respondSuccess(c, "favorite removed")
}

// RefreshFavorites pulls the backend list and makes it the local truth.
func (fc *FavoritesController) RefreshFavorites(c *gin.Context) {
	result, err := fc.store.Refresh(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "refresh favorites")
		return
	}
	c.JSON(http.StatusOK, result)
}

// SyncFavorites queues a favourites sync on the task queue, falling back
// to a synchronous run when the queue is not configured.
func (fc *FavoritesController) SyncFavorites(c *gin.Context) {
	if fc.taskClient != nil {
		ids, err := fc.taskClient.Add(tasks.SyncFavoritesTask{Reason: "api"}).Save()
		if err != nil {
			respondInternalError(c, err, "queue favorites sync")
			return
		}
		respondAccepted(c, "favorites sync queued", gin.H{"task_ids": ids})
		return
	}

	if err := fc.store.Synchronize(c.Request.Context()); err != nil {
		respondInternalError(c, err, "sync favorites")
		return
	}
	respondSuccess(c, "favorites sync complete")
}

// GetSyncStatus reports the outcome of the latest sync and, when the
// scheduler is running, the next scheduled run.
func (fc *FavoritesController) GetSyncStatus(c *gin.Context) {
	response := gin.H{}

	if fc.db != nil {
		lastAt, status, message := fc.db.GetFavoritesSyncStatus()
		response["last_sync_at"] = lastAt
		response["last_status"] = status
		response["last_message"] = message
	}

	if fc.scheduler != nil {
		response["scheduler_running"] = fc.scheduler.IsRunning()
		response["sync_in_progress"] = fc.scheduler.IsSyncing()
		response["next_run_at"] = fc.scheduler.GetNextRunTime()
	}

	c.JSON(http.StatusOK, response)
}
