package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/payment"
	"github.com/apidon/hermes/internal/provider"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{username} Profiles GetProfile
	//
	// Get actor profile with denormalized counters.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: username
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid username")
		return
	}

	a, err := s.s.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(a))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	if req.Description == "" && req.Image == "" {
		writeError(w, http.StatusUnprocessableEntity, "empty post")
		return
	}

	p, err := s.s.CreatePost(r.Context(), actorFromContext(r.Context()), req.Description, req.Image)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to create post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	v, err := s.s.GetPostView(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPostResponse(v))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	if err := s.s.DeletePost(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err, "failed to delete post")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) likePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{owner}/{uuid}/like Posts LikePost
	//
	// Apply or undo a like. A duplicate apply or an undo without a prior
	// like is rejected and leaves state unchanged.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/LikeRequest"
	// responses:
	//   '200':
	//     description: applied
	//   '422':
	//     description: illegal state
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	action, err := entities.ParseLikeAction(req.Action)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid action")
		return
	}

	if err := s.s.LikePost(r.Context(), actorFromContext(r.Context()), id, action); err != nil {
		s.writeServiceError(w, r, err, "failed to like post")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) commentPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	if err := s.s.CommentPost(r.Context(), actorFromContext(r.Context()), id, req.Message); err != nil {
		s.writeServiceError(w, r, err, "failed to comment post")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	var req DeleteCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Sender == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	c := entities.PostComment{
		Sender:      req.Sender,
		Message:     req.Message,
		CommentedAt: time.Unix(req.CommentedAt, 0),
	}

	if err := s.s.DeleteComment(r.Context(), actorFromContext(r.Context()), id, c); err != nil {
		s.writeServiceError(w, r, err, "failed to delete comment")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /follow Social Follow
	//
	// Apply (opCode 1) or undo (opCode -1) a follow edge.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/FollowRequest"
	// responses:
	//   '200':
	//     description: applied
	//   '422':
	//     description: illegal state
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Target == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	op, err := entities.ParseFollowOpCode(req.OpCode)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid opCode")
		return
	}

	if err := s.s.Follow(r.Context(), actorFromContext(r.Context()), req.Target, op); err != nil {
		s.writeServiceError(w, r, err, "failed to follow")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) createFrenlet(w http.ResponseWriter, r *http.Request) {
	var req CreateFrenletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Receiver == "" || req.Message == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	f, err := s.s.CreateFrenlet(r.Context(), actorFromContext(r.Context()), req.Receiver, req.Message, req.Tag)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to create frenlet")
		return
	}

	writeOK(w, http.StatusOK, toAPIFrenlet(f))
}

func (s server) getFrenlet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid frenlet id")
		return
	}

	v, err := s.s.GetFrenletView(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "frenlet not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get frenlet: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIFrenletResponse(v))
}

func (s server) likeFrenlet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid frenlet id")
		return
	}

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	action, err := entities.ParseLikeAction(req.Action)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid action")
		return
	}

	if err := s.s.LikeFrenlet(r.Context(), actorFromContext(r.Context()), id, action); err != nil {
		s.writeServiceError(w, r, err, "failed to like frenlet")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) replyFrenlet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid frenlet id")
		return
	}

	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	if err := s.s.ReplyFrenlet(r.Context(), actorFromContext(r.Context()), id, req.Message); err != nil {
		s.writeServiceError(w, r, err, "failed to reply frenlet")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) deleteFrenlet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid frenlet id")
		return
	}

	if err := s.s.DeleteFrenlet(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err, "failed to delete frenlet")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) listNotifications(w http.ResponseWriter, r *http.Request) {
	v, err := s.s.ListNotifications(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list notifications: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPINotifications(v))
}

// openNotifications is a side-effecting read: it advances the unseen
// watermark to now.
func (s server) openNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.s.OpenNotifications(r.Context(), actorFromContext(r.Context())); err != nil {
		s.writeServiceError(w, r, err, "failed to open notifications")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) getProviderState(w http.ResponseWriter, r *http.Request) {
	state, err := s.s.GetProviderState(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get provider state: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, ProviderStateResponse{
		Phase:        string(state.Phase),
		Subscription: toAPISubscription(state.Subscription),
	})
}

func (s server) chooseProvider(w http.ResponseWriter, r *http.Request) {
	var req ChooseProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProviderName == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	sub, err := s.s.ChooseProvider(r.Context(), actorFromContext(r.Context()), req.ProviderName)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to choose provider")
		return
	}

	writeOK(w, http.StatusOK, toAPISubscription(sub))
}

func (s server) withdraw(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /provider/withdraw Provider Withdraw
	//
	// Archive the expired subscription and pay the yield out on-chain.
	// Legal only after the subscription window has ended.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/WithdrawRequest"
	// responses:
	//   '200':
	//     description: receipt
	//     schema:
	//       "$ref": "#/definitions/WithdrawResponse"
	//   '422':
	//     description: illegal state
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '503':
	//     description: provider or payment backend failure
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PayoutAddress == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	receipt, err := s.s.WithdrawYield(r.Context(), actorFromContext(r.Context()), req.PayoutAddress)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to withdraw")
		return
	}

	writeOK(w, http.StatusOK, WithdrawResponse{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
	})
}

func (s server) skipWithdraw(w http.ResponseWriter, r *http.Request) {
	if err := s.s.SkipWithdraw(r.Context(), actorFromContext(r.Context())); err != nil {
		s.writeServiceError(w, r, err, "failed to skip withdraw")
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) changeProvider(w http.ResponseWriter, r *http.Request) {
	var req ChooseProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProviderName == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	sub, err := s.s.ChangeProvider(r.Context(), actorFromContext(r.Context()), req.ProviderName)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to change provider")
		return
	}

	writeOK(w, http.StatusOK, toAPISubscription(sub))
}

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := s.s.GetFeed(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err, "failed to get feed")
		return
	}

	out := FeedResponse{Posts: make([]Post, len(posts))}
	for i, p := range posts {
		out.Posts[i] = toAPIPost(p)
	}

	writeOK(w, http.StatusOK, out)
}

// writeServiceError maps engine errors to the response taxonomy: illegal
// state to 422, foreign resources to 403, backing-service failures to 503,
// everything else to 500.
func (s server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case isStateError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusUnprocessableEntity, "not found")
	case errors.Is(err, provider.ErrUnexpectedStatus),
		errors.Is(err, payment.ErrUnexpectedStatus),
		errors.Is(err, gobreaker.ErrOpenState):
		writeErrorf(w, http.StatusServiceUnavailable, "backing service failure")
	default:
		writeInternalErrorf(r.Context(), w, "%s: %s", msg, err.Error())
	}
}

func isStateError(err error) bool {
	for _, target := range []error{
		service.ErrAlreadyLiked,
		service.ErrNotLiked,
		service.ErrAlreadyFollowing,
		service.ErrNotFollowing,
		service.ErrSelfTarget,
		service.ErrNotMutualFrens,
		service.ErrNoComment,
		service.ErrProviderActive,
		service.ErrPendingWithdraw,
		service.ErrNoProvider,
		service.ErrSameProvider,
		service.ErrNotExpired,
		service.ErrExpired,
		entities.ErrInvalidDiscriminator,
		storage.ErrAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func postIDFromURL(w http.ResponseWriter, r *http.Request) (entities.PostID, bool) {
	owner, uuid := chi.URLParam(r, "owner"), chi.URLParam(r, "uuid")
	if owner == "" || uuid == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid owner or uuid")
		return entities.PostID{}, false
	}

	return entities.PostID{Owner: owner, UUID: uuid}, true
}
